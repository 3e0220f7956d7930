// Package wire houses the low-level MessagePack format-byte constants and
// the error taxonomy shared by the encoder and decoder. Keeping the format
// bytes here (independent of the value tree and the buffer/cursor types)
// mirrors the teacher layout's separation of format constants from the
// structures that use them.
package wire

// Fixed single-byte formats.
const (
	Nil        byte = 0xc0
	False      byte = 0xc2
	True       byte = 0xc3
	Reserved   byte = 0xc1 // never assigned by the spec; must be rejected
	Float32    byte = 0xca
	Float64    byte = 0xcb
	Uint8      byte = 0xcc
	Uint16     byte = 0xcd
	Uint32     byte = 0xce
	Uint64     byte = 0xcf
	Int8       byte = 0xd0
	Int16      byte = 0xd1
	Int32      byte = 0xd2
	Int64      byte = 0xd3
	Bin8       byte = 0xc4
	Bin16      byte = 0xc5
	Bin32      byte = 0xc6
	Str8       byte = 0xd9
	Str16      byte = 0xda
	Str32      byte = 0xdb
	Array16    byte = 0xdc
	Array32    byte = 0xdd
	Map16      byte = 0xde
	Map32      byte = 0xdf
	Ext8       byte = 0xc7
	Ext16      byte = 0xc8
	Ext32      byte = 0xc9
	FixExt1    byte = 0xd4
	FixExt2    byte = 0xd5
	FixExt4    byte = 0xd6
	FixExt8    byte = 0xd7
	FixExt16   byte = 0xd8
)

// Fixed-range format bases and masks.
const (
	PositiveFixintMax byte = 0x7f
	NegativeFixintMin byte = 0xe0 // 0xe0..0xff, value = byte as signed int8

	FixMapBase  byte = 0x80
	FixMapMask  byte = 0x0f
	FixMapMax   int  = 15
	FixArrayBase byte = 0x90
	FixArrayMask byte = 0x0f
	FixArrayMax  int  = 15
	FixStrBase  byte = 0xa0
	FixStrMask  byte = 0x1f
	FixStrMax   int  = 31
)

// Integer boundaries from spec.md §4.3's format-selection table.
const (
	Uint8Max  = 1<<8 - 1
	Uint16Max = 1<<16 - 1
	Uint32Max = 1<<32 - 1

	Int8Min  = -1 << 7
	Int16Min = -1 << 15
	Int32Min = -1 << 31
)

// DefaultMaxDepth is the recursion-depth guard named by spec.md §5 ("a
// configurable limit (e.g. 256)").
const DefaultMaxDepth = 256
