package cache

import (
	"strings"
	"time"

	"github.com/c2fo/netstorage/utils"
)

// Kind discriminates the two node variants stored in the one nodes table.
type Kind string

const (
	KindDirectory Kind = "directory"
	KindFile      Kind = "file"
)

// Node is a cached directory or file of a remote tree. (StorageKey, Path) is unique.
type Node struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UUID       string    `gorm:"size:36;uniqueIndex" json:"uuid"`
	StorageKey string    `gorm:"size:64;not null;uniqueIndex:idx_nodes_storage_path;index:idx_nodes_storage_parent" json:"storage_key"`
	Path       string    `gorm:"size:700;not null;uniqueIndex:idx_nodes_storage_path" json:"path"`
	ParentID   *uint     `gorm:"index:idx_nodes_storage_parent" json:"parent_id"`
	Parent     *Node     `gorm:"foreignKey:ParentID" json:"-"`
	Kind       Kind      `gorm:"size:16;not null" json:"kind"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	FileExt    string    `gorm:"size:16" json:"file_ext,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Node) TableName() string {
	return "cached_nodes"
}

func (n Node) IsDir() bool {
	return n.Kind == KindDirectory
}

func (n Node) IsFile() bool {
	return n.Kind == KindFile
}

// Filename returns the file's base name with its extension, or Name for a directory.
func (n Node) Filename() string {
	if n.IsFile() && n.FileExt != "" {
		return n.Name + "." + n.FileExt
	}
	return n.Name
}

// NewDirectory returns an unsaved directory node.
func NewDirectory(storageKey, path, name string, parentID *uint) *Node {
	return &Node{
		StorageKey: storageKey,
		Path:       path,
		ParentID:   parentID,
		Kind:       KindDirectory,
		Name:       name,
	}
}

// NewFile returns an unsaved file node, splitting filename into name and extension.
func NewFile(storageKey, path, filename string, parentID *uint) *Node {
	name, ext := SplitFilename(filename)
	return &Node{
		StorageKey: storageKey,
		Path:       path,
		ParentID:   parentID,
		Kind:       KindFile,
		Name:       name,
		FileExt:    ext,
	}
}

// SplitFilename splits filename on its last dot. The extension is lowercased and has no leading dot; leading dots
// of hidden files never start an extension.
func SplitFilename(filename string) (name, ext string) {
	name, ext = utils.SplitExt(filename)
	return name, strings.ToLower(strings.TrimPrefix(ext, "."))
}
