package fdb

// nullAddr marks an absent link, such as the end of a bucket chain.
const nullAddr = 0xFFFFFFFF

// Record sizes in bytes. All fields are little-endian uint32.
const (
	headerSize          = 8  // table_count, table_header_list
	tableHeaderSize     = 8  // table_def_header, table_data_header
	tableDefHeaderSize  = 12 // column_count, table_name, column_header_list
	columnHeaderSize    = 8  // data_type, column_name
	tableDataHeaderSize = 8  // bucket_count, bucket_header_list
	bucketHeaderSize    = 4  // row_header_list_head
	rowListEntrySize    = 8  // row_header, next_entry
	rowHeaderSize       = 8  // field_count, field_data_list
	fieldDataSize       = 8  // data_type, value
)
