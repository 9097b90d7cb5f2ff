package region

import (
	"os"

	"github.com/zydeco/nbtkit/errs"
)

// Rewrite produces a fresh, defragmented copy of the region: every
// present chunk's raw sector bytes are preserved as-is (no
// recompression) and packed into consecutive sectors in slot-index
// order, starting at sector 2. It returns the number of bytes reclaimed
// (old file size minus new file size, which is always >= 0).
func (r *Region) Rewrite() (bytesSaved int64, err error) {
	oldInfo, err := r.file.Stat()
	if err != nil {
		return 0, errs.Wrap(errs.Read, "region.Rewrite", err)
	}
	oldSize := oldInfo.Size()

	tmpPath := r.path + ".rewrite.tmp"
	tmp, err := os.OpenFile(tmpPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, errs.Wrap(errs.Write, "region.Rewrite", err)
	}

	newHeader, newSize, err := r.packInto(tmp)
	if err != nil {
		tmp.Close()
		os.Remove(tmpPath)

		return 0, err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)

		return 0, errs.Wrap(errs.Write, "region.Rewrite", err)
	}

	if err := r.file.Close(); err != nil {
		os.Remove(tmpPath)

		return 0, errs.Wrap(errs.Write, "region.Rewrite", err)
	}

	if err := os.Rename(tmpPath, r.path); err != nil {
		return 0, errs.Wrap(errs.Write, "region.Rewrite", err)
	}

	reopened, err := os.OpenFile(r.path, os.O_RDWR, 0o644)
	if err != nil {
		return 0, errs.Wrap(errs.Write, "region.Rewrite", err)
	}

	r.file = reopened
	r.header = newHeader
	r.bitmap = newSectorBitmap()

	fileSectors := int(newSize / SectorSize)
	r.bitmap.ensure(fileSectors - 1)
	for _, entry := range r.header.offsets {
		if entry != 0 {
			r.bitmap.markUsed(offsetSectors(entry), sectorCount(entry))
		}
	}

	return oldSize - newSize, nil
}

// packInto writes a fresh header placeholder followed by every present
// chunk's raw sectors, in slot-index order, to tmp. It returns the new
// header table (with updated offsets, preserved timestamps) and the
// final file size.
func (r *Region) packInto(tmp *os.File) (headerTable, int64, error) {
	if _, err := tmp.WriteAt(make([]byte, headerSize), 0); err != nil {
		return headerTable{}, 0, errs.Wrap(errs.Write, "region.Rewrite", err)
	}

	var newHeader headerTable
	next := HeaderSectors

	for idx, entry := range r.header.offsets {
		if entry == 0 {
			continue
		}

		start := offsetSectors(entry)
		count := sectorCount(entry)

		raw := make([]byte, count*SectorSize)
		if _, err := r.file.ReadAt(raw, int64(start)*SectorSize); err != nil {
			return headerTable{}, 0, errs.Wrap(errs.Read, "region.Rewrite", err)
		}

		if _, err := tmp.WriteAt(raw, int64(next)*SectorSize); err != nil {
			return headerTable{}, 0, errs.Wrap(errs.Write, "region.Rewrite", err)
		}

		newHeader.offsets[idx] = packOffset(next, count)
		newHeader.timestamps[idx] = r.header.timestamps[idx]
		next += count
	}

	if _, err := tmp.WriteAt(newHeader.bytes(), 0); err != nil {
		return headerTable{}, 0, errs.Wrap(errs.Write, "region.Rewrite", err)
	}

	return newHeader, int64(next) * SectorSize, nil
}
