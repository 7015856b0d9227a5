package payments

import (
	"go.uber.org/zap"

	"github.com/arnac-io/chatpay/internal/g"
	"github.com/arnac-io/chatpay/pkg/core"
	"github.com/arnac-io/chatpay/pkg/oas"
	"github.com/arnac-io/chatpay/pkg/wire"
)

// webPhotoSizeType is the size type of photos made from a single web file.
const webPhotoSizeType = "n"

// photoToRemote returns the web document of the first size the file manager knows. A photo
// with no known size is an error rather than being left out.
func (t *Translator) photoToRemote(op string, photo g.Opt[core.Photo]) (*wire.InputWebDocument, error) {
	p, ok := photo.Get()
	if !ok {
		return nil, nil
	}
	for _, size := range p.Sizes {
		f, ok := t.files.WebFile(size.File)
		if !ok {
			continue
		}
		doc := &wire.InputWebDocument{
			URL:      f.URL,
			Size:     f.Size,
			MimeType: f.MimeType,
		}
		if f.Width > 0 || f.Height > 0 {
			doc.Attributes = []wire.DocumentAttributeImageSize{{W: f.Width, H: f.Height}}
		}
		return doc, nil
	}
	t.logger.Warn("invoice photo is not known to the file manager", zap.Int64("photo_id", p.ID))
	return nil, core.NotFound(op, "invoice photo file not found")
}

func (t *Translator) photoFromRemote(doc *wire.WebDocument) g.Opt[core.Photo] {
	if doc == nil {
		return g.Opt[core.Photo]{}
	}
	f := core.WebFile{
		URL:        doc.URL,
		AccessHash: doc.AccessHash,
		Size:       doc.Size,
		MimeType:   doc.MimeType,
	}
	if len(doc.Attributes) > 0 {
		f.Width, f.Height = doc.Attributes[0].W, doc.Attributes[0].H
	}
	return t.webPhoto(f)
}

func (t *Translator) photoFromInputWebDocument(doc *wire.InputWebDocument) g.Opt[core.Photo] {
	if doc == nil {
		return g.Opt[core.Photo]{}
	}
	f := core.WebFile{
		URL:      doc.URL,
		Size:     doc.Size,
		MimeType: doc.MimeType,
	}
	if len(doc.Attributes) > 0 {
		f.Width, f.Height = doc.Attributes[0].W, doc.Attributes[0].H
	}
	return t.webPhoto(f)
}

func (t *Translator) webPhoto(f core.WebFile) g.Opt[core.Photo] {
	id, err := t.files.RegisterWebFile(f)
	if err != nil {
		t.logger.Warn("failed to register invoice photo", zap.Error(err))
		return g.Opt[core.Photo]{}
	}
	return g.NewOpt(core.Photo{
		Sizes: []core.PhotoSize{{
			Type:   webPhotoSizeType,
			Width:  f.Width,
			Height: f.Height,
			Size:   f.Size,
			File:   id,
		}},
	})
}

func convertPhoto(p core.Photo) oas.Photo {
	sizes := make([]oas.PhotoSize, 0, len(p.Sizes))
	for _, s := range p.Sizes {
		sizes = append(sizes, oas.PhotoSize{
			Type:   s.Type,
			Photo:  oas.File{ID: int32(s.File), Size: s.Size},
			Width:  s.Width,
			Height: s.Height,
		})
	}
	return oas.Photo{Sizes: sizes}
}

func convertOptPhoto(p g.Opt[core.Photo]) oas.OptPhoto {
	var res oas.OptPhoto
	if photo, ok := p.Get(); ok {
		res.SetTo(convertPhoto(photo))
	}
	return res
}
