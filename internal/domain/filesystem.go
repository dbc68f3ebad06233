package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Filesystem identifies a target filesystem whose naming rules are checked.
type Filesystem string

const (
	// NTFS is the Windows NT filesystem.
	NTFS Filesystem = "ntfs"
	// ExFAT is the extended FAT filesystem used on removable media.
	ExFAT Filesystem = "exfat"
	// Ext4 is the Linux fourth extended filesystem.
	Ext4 Filesystem = "ext4"
	// EncryptedExt4 is ext4 under an encrypting overlay, where names are
	// stored as longer ciphertext.
	EncryptedExt4 Filesystem = "encrypted-ext4"
)

// ErrUnsupportedFilesystem is returned when a filesystem identifier is not recognized.
var ErrUnsupportedFilesystem = errors.New("unsupported filesystem")

var allFilesystems = []Filesystem{NTFS, ExFAT, Ext4, EncryptedExt4}

// AllFilesystems returns every supported filesystem in canonical order.
func AllFilesystems() []Filesystem {
	out := make([]Filesystem, len(allFilesystems))
	copy(out, allFilesystems)
	return out
}

// ParseFilesystem converts a user-supplied identifier into a Filesystem.
// Matching is case-insensitive; "ext" is accepted as an alias for ext4.
func ParseFilesystem(s string) (Filesystem, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "ext" {
		return Ext4, nil
	}
	for _, fs := range allFilesystems {
		if string(fs) == name {
			return fs, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFilesystem, s, JoinFilesystems(allFilesystems))
}

// ParseFilesystems parses a list of identifiers, dropping duplicates while
// keeping the order in which they were first given.
func ParseFilesystems(names []string) ([]Filesystem, error) {
	var out []Filesystem
	seen := make(map[Filesystem]bool, len(names))
	for _, n := range names {
		fs, err := ParseFilesystem(n)
		if err != nil {
			return nil, err
		}
		if seen[fs] {
			continue
		}
		seen[fs] = true
		out = append(out, fs)
	}
	return out, nil
}

// JoinFilesystems renders filesystems as a comma-and-space separated list.
func JoinFilesystems(fss []Filesystem) string {
	parts := make([]string, len(fss))
	for i, fs := range fss {
		parts[i] = string(fs)
	}
	return strings.Join(parts, ", ")
}
