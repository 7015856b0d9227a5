package core

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// FileID is a local file identifier issued by the file manager. Zero is not a valid id.
type FileID int32

func (id FileID) IsValid() bool {
	return id > 0
}

// WebFile is the external representation of a remote image: where to fetch it, not its bytes.
type WebFile struct {
	URL        string
	AccessHash int64
	Size       int32
	MimeType   string
	Width      int32
	Height     int32
}

type PhotoSize struct {
	Type   string
	Width  int32
	Height int32
	Size   int32
	File   FileID
}

type Photo struct {
	ID    int64
	Sizes []PhotoSize
}

func (p Photo) Equal(o Photo) bool {
	return p.ID == o.ID && slices.Equal(p.Sizes, o.Sizes)
}

// FileIDs returns the valid file ids of all size variants in size order.
func (p Photo) FileIDs() []FileID {
	ids := make([]FileID, 0, len(p.Sizes))
	for _, s := range p.Sizes {
		if s.File.IsValid() {
			ids = append(ids, s.File)
		}
	}
	return ids
}

func (p Photo) String() string {
	return fmt.Sprintf("Photo[id = %d, sizes = %v]", p.ID, p.Sizes)
}
