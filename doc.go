/*
Package fdb reads FDB files, the read-only table databases shipped with the
game client, directly from a memory-mapped buffer.

We implement:

1. A value model for the seven stored types (Nothing, Integer, Float, Text,
Boolean, BigInt, VarChar), with the hash the files use to place rows.

2. Lazy decoding of the table directory, columns, buckets and rows. Nothing
is copied out of the buffer; text values alias it.

3. Primary-key lookups through the hash buckets, including multi-key
lookups that visit each bucket once.

Typed access by column name lives in package typed, reverse indices in
package revindex.

# File format

All integers are little-endian uint32. An address is an absolute offset
into the file; 0xFFFFFFFF is the null address.

**Header** (offset 0): table count, address of the table header list.

**Table header** (8 bytes, one per table): address of the table definition
header, address of the table data header.

**Table definition header**: column count, address of the NUL-terminated
table name, address of the column header list.

**Column header** (8 bytes): type code, address of the column name.

**Table data header**: bucket count, address of the bucket array.

**Bucket** (4 bytes): address of the first row list entry, or null.

**Row list entry** (8 bytes): address of the row header, address of the next
entry in the same bucket, or null.

**Row header**: field count, address of the field array.

**Field** (8 bytes): type code, then 4 value bytes. Integer and Float are
stored inline, Boolean is any non-zero word. Text and VarChar hold the
address of a NUL-terminated ISO-8859-1 string, BigInt the address of an
8-byte signed integer.

A row lives in bucket hash(field 0) mod bucket count. Integer keys hash to
their bit pattern, BigInt to its low 32 bits, Float to its IEEE bits,
Boolean to 0 or 1, and strings to SuperFastHash of their bytes.
*/
package fdb
