package stream

import "github.com/gaan/gaan-downloader/internal/model"

// progressWriter counts bytes on their way to the destination file
type progressWriter struct {
	desc      model.StreamDescriptor
	remaining int64
	onChunk   ProgressFunc
}

func newProgressWriter(desc model.StreamDescriptor, total int64, onChunk ProgressFunc) *progressWriter {
	if total <= 0 {
		total = desc.Filesize
	}
	return &progressWriter{desc: desc, remaining: total, onChunk: onChunk}
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.remaining -= int64(len(b))
	if p.remaining < 0 {
		p.remaining = 0
	}
	if p.onChunk != nil {
		p.onChunk(p.desc, b, p.remaining)
	}
	return len(b), nil
}
