package region

import (
	"io"
	"os"

	"github.com/zydeco/nbtkit/errs"
)

// Region is a handle to an open region file: the two in-memory header
// tables, a sector occupancy bitmap, and the underlying file. A Region
// is not safe for concurrent use from multiple goroutines without
// external synchronization.
type Region struct {
	file   *os.File
	path   string
	header headerTable
	bitmap *sectorBitmap
}

// Open opens the region file at path, creating an empty one (an
// 8192-byte zeroed header, no chunks) if it does not exist. Open fails
// if an existing file is shorter than the header, or if its offset
// table describes overlapping, out-of-file, or header-colliding chunk
// ranges.
func Open(path string) (*Region, error) {
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, errs.Wrap(errs.Read, "region.Open", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()

		return nil, errs.Wrap(errs.Read, "region.Open", err)
	}

	r := &Region{file: file, path: path}

	if info.Size() == 0 {
		if err := r.initEmpty(); err != nil {
			file.Close()

			return nil, err
		}

		return r, nil
	}

	if info.Size() < headerSize {
		file.Close()

		return nil, ErrTruncated
	}

	if err := r.load(info.Size()); err != nil {
		file.Close()

		return nil, err
	}

	return r, nil
}

func (r *Region) initEmpty() error {
	zero := make([]byte, headerSize)
	if _, err := r.file.WriteAt(zero, 0); err != nil {
		return errs.Wrap(errs.Write, "region.Open", err)
	}

	r.header = headerTable{}
	r.bitmap = newSectorBitmap()

	return nil
}

func (r *Region) load(fileSize int64) error {
	raw := make([]byte, headerSize)
	if _, err := io.ReadFull(io.NewSectionReader(r.file, 0, headerSize), raw); err != nil {
		return errs.Wrap(errs.Read, "region.Open", err)
	}

	r.header = parseHeaderTable(raw)
	r.bitmap = newSectorBitmap()

	fileSectors := int(fileSize / SectorSize)
	r.bitmap.ensure(fileSectors - 1)

	for idx, entry := range r.header.offsets {
		if entry == 0 {
			continue
		}

		start := offsetSectors(entry)
		count := sectorCount(entry)

		if start < HeaderSectors {
			return ErrReservedSector
		}
		if start+count > fileSectors {
			return ErrOutOfFile
		}
		if r.bitmap.isOccupied(start, count) {
			return ErrOverlap
		}

		r.bitmap.markUsed(start, count)
		_ = idx
	}

	return nil
}

// IsEmpty reports whether every chunk slot is empty.
func (r *Region) IsEmpty() bool {
	for _, entry := range r.header.offsets {
		if entry != 0 {
			return false
		}
	}

	return true
}

// Close releases the underlying file handle.
func (r *Region) Close() error {
	if err := r.file.Close(); err != nil {
		return errs.Wrap(errs.Write, "region.Close", err)
	}

	return nil
}

// Stats summarizes a region's occupancy: chunk count and sector usage,
// useful for diagnostics and tooling.
type Stats struct {
	ChunkCount  int
	SectorCount int
	UsedSectors int
	FreeSectors int
}

// Stat reports a snapshot of the region's current occupancy.
func (r *Region) Stat() Stats {
	stats := Stats{SectorCount: r.bitmap.len()}
	for _, entry := range r.header.offsets {
		if entry != 0 {
			stats.ChunkCount++
			stats.UsedSectors += sectorCount(entry)
		}
	}
	stats.FreeSectors = stats.SectorCount - stats.UsedSectors - HeaderSectors

	return stats
}
