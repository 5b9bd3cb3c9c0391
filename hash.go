package fdb

// SuperFastHash is Paul Hsieh's hash over raw bytes, the function the data
// files use to bucket text keys. Tail bytes are sign-extended the way the
// reference C implementation reads them through signed char.
func SuperFastHash(data []byte) uint32 {
	n := len(data)
	if n == 0 {
		return 0
	}
	hash := uint32(n)
	rem := n & 3

	for n >>= 2; n > 0; n-- {
		hash += get16(data)
		tmp := (get16(data[2:]) << 11) ^ hash
		hash = (hash << 16) ^ tmp
		data = data[4:]
		hash += hash >> 11
	}

	switch rem {
	case 3:
		hash += get16(data)
		hash ^= hash << 16
		hash ^= uint32(int32(int8(data[2]))) << 18
		hash += hash >> 11
	case 2:
		hash += get16(data)
		hash ^= hash << 11
		hash += hash >> 17
	case 1:
		hash += uint32(int32(int8(data[0])))
		hash ^= hash << 10
		hash += hash >> 1
	}

	hash ^= hash << 3
	hash += hash >> 5
	hash ^= hash << 4
	hash += hash >> 17
	hash ^= hash << 25
	hash += hash >> 6
	return hash
}

func get16(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8
}
