package region

import "encoding/binary"

// headerTable holds the two in-memory tables parsed from (or destined
// for) a region file's first two sectors: one packed offset entry and
// one timestamp per chunk slot. Both tables are always big-endian on
// disk, independent of any chunk's own NBT byte order.
type headerTable struct {
	offsets    [SlotCount]uint32 // (offsetSectors << 8) | sectorCount, 0 = empty slot
	timestamps [SlotCount]uint32 // Unix seconds of last write, 0 = unset
}

// offsetSectors returns the sector offset packed into entry.
func offsetSectors(entry uint32) int {
	return int(entry >> 8)
}

// sectorCount returns the sector count packed into entry.
func sectorCount(entry uint32) int {
	return int(entry & 0xFF)
}

// packOffset packs a sector offset and count into a single header entry.
func packOffset(sectors, count int) uint32 {
	return uint32(sectors)<<8 | uint32(count&0xFF)
}

// parseHeaderTable parses the two 4096-byte header sectors out of data,
// which must be at least headerSize bytes.
func parseHeaderTable(data []byte) headerTable {
	var h headerTable
	for i := range SlotCount {
		h.offsets[i] = binary.BigEndian.Uint32(data[i*4 : i*4+4])
	}
	for i := range SlotCount {
		off := SectorSize + i*4
		h.timestamps[i] = binary.BigEndian.Uint32(data[off : off+4])
	}

	return h
}

// bytes serializes the header table into its on-disk headerSize-byte form.
func (h *headerTable) bytes() []byte {
	buf := make([]byte, headerSize)
	for i := range SlotCount {
		binary.BigEndian.PutUint32(buf[i*4:i*4+4], h.offsets[i])
	}
	for i := range SlotCount {
		off := SectorSize + i*4
		binary.BigEndian.PutUint32(buf[off:off+4], h.timestamps[i])
	}

	return buf
}

// entryBytes serializes a single offset-table entry, for a targeted
// 4-byte write instead of rewriting the whole sector.
func entryBytes(entry uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, entry)

	return b
}
