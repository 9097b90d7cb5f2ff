package region

import (
	"bytes"
	"encoding/binary"
	"time"

	"github.com/zydeco/nbtkit/codec"
	"github.com/zydeco/nbtkit/compress"
	"github.com/zydeco/nbtkit/errs"
	"github.com/zydeco/nbtkit/internal/pool"
	"github.com/zydeco/nbtkit/tag"
)

// chunkEncodeOptions encodes chunk NBT payloads with zlib compression,
// big-endian — the fixed wire shape region chunks always use.
var chunkEncodeOptions = codec.NewOptions(codec.WithCompression(compress.SchemeZlib))

// GetChunk reads and decodes the chunk at (x, z). It returns (nil, nil)
// for an empty slot.
func (r *Region) GetChunk(x, z int) (*tag.Compound, error) {
	if err := validateCoord(x, z); err != nil {
		return nil, err
	}

	entry := r.header.offsets[slotIndex(x, z)]
	if entry == 0 {
		return nil, nil
	}

	start := offsetSectors(entry)

	lenBuf := make([]byte, 4)
	if _, err := r.file.ReadAt(lenBuf, int64(start)*SectorSize); err != nil {
		return nil, errs.Wrap(errs.Read, "region.GetChunk", err)
	}

	length := int(binary.BigEndian.Uint32(lenBuf))
	if length < 1 {
		return nil, errs.New(errs.Read, "region.GetChunk", "chunk payload length is zero")
	}

	body := make([]byte, length)
	if _, err := r.file.ReadAt(body, int64(start)*SectorSize+4); err != nil {
		return nil, errs.Wrap(errs.Read, "region.GetChunk", err)
	}

	scheme := compress.Scheme(body[0])
	payload := body[1:]

	dc, err := compress.ForScheme(scheme)
	if err != nil {
		return nil, err
	}

	plain, err := dc.Decompress(payload)
	if err != nil {
		return nil, errs.Wrap(errs.Read, "region.GetChunk", err)
	}

	_, root, err := codec.ReadRoot(bytes.NewReader(plain), 0)
	if err != nil {
		return nil, err
	}

	return root, nil
}

// SetChunk writes root at (x, z), or clears the slot when root is nil.
// It returns false, nil (no error) when the encoded, compressed payload
// is too large for the one-byte sector-count field to address.
func (r *Region) SetChunk(x, z int, root *tag.Compound) (ok bool, err error) {
	if err := validateCoord(x, z); err != nil {
		return false, err
	}

	idx := slotIndex(x, z)

	if root == nil {
		return true, r.clearSlot(idx)
	}

	buf := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(buf)

	if _, err := codec.WriteRoot(buf, "", root, chunkEncodeOptions); err != nil {
		return false, err
	}

	compressedLen := buf.Len()
	needed := (5 + compressedLen + SectorSize - 1) / SectorSize
	if needed > MaxSectorCount {
		return false, nil
	}

	start, count := r.allocate(idx, needed)

	if err := r.writeChunkSectors(start, needed, buf.Bytes()); err != nil {
		return false, err
	}

	r.header.offsets[idx] = packOffset(start, count)
	r.header.timestamps[idx] = uint32(time.Now().Unix())

	if err := r.writeHeaderEntry(idx); err != nil {
		return false, err
	}

	return true, nil
}

// allocate picks the sector range a chunk's new payload will occupy,
// implementing the in-place-reuse-never-shrinks policy: an existing
// slot whose current sectorCount already covers needed keeps its
// offset AND its recorded sectorCount unchanged (trailing sectors stay
// allocated to it, unused, so the header entry's sectorCount is never
// shrunk by reuse). Otherwise its old sectors (if any) are freed and a
// first-fit search (falling back to append-at-end-of-file) picks a new
// range sized exactly to needed.
func (r *Region) allocate(idx, needed int) (start, count int) {
	existing := r.header.offsets[idx]
	if existing != 0 {
		start := offsetSectors(existing)
		count := sectorCount(existing)
		if count >= needed {
			return start, count
		}

		r.bitmap.markFree(start, count)
	}

	start = r.bitmap.firstFit(needed)
	r.bitmap.markUsed(start, needed)

	return start, needed
}

// writeChunkSectors writes [u32 length][u8 scheme=zlib][compressed
// bytes] at sector start, zero-padding the final partial sector.
func (r *Region) writeChunkSectors(start, sectors int, compressed []byte) error {
	total := sectors * SectorSize
	out := make([]byte, total)
	binary.BigEndian.PutUint32(out[:4], uint32(1+len(compressed)))
	out[4] = byte(compress.SchemeZlib)
	copy(out[5:], compressed)

	if _, err := r.file.WriteAt(out, int64(start)*SectorSize); err != nil {
		return errs.Wrap(errs.Write, "region.SetChunk", err)
	}

	return nil
}

func (r *Region) writeHeaderEntry(idx int) error {
	offBytes := entryBytes(r.header.offsets[idx])
	if _, err := r.file.WriteAt(offBytes, int64(idx)*4); err != nil {
		return errs.Wrap(errs.Write, "region.SetChunk", err)
	}

	tsBytes := entryBytes(r.header.timestamps[idx])
	if _, err := r.file.WriteAt(tsBytes, SectorSize+int64(idx)*4); err != nil {
		return errs.Wrap(errs.Write, "region.SetChunk", err)
	}

	return nil
}

func (r *Region) clearSlot(idx int) error {
	entry := r.header.offsets[idx]
	if entry != 0 {
		r.bitmap.markFree(offsetSectors(entry), sectorCount(entry))
	}

	r.header.offsets[idx] = 0
	r.header.timestamps[idx] = 0

	return r.writeHeaderEntry(idx)
}

