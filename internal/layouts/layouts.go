package layouts

import (
	"fmt"
	"io"
)

// Record is one installed keyboard layout
type Record struct {
	HKL    uint32
	LangID uint16
}

// NewRecord derives the language ID from the low word of the handle
func NewRecord(hkl uint32) Record {
	return Record{HKL: hkl, LangID: uint16(hkl & 0xFFFF)}
}

// String formats the record as printed by the enumerator
func (r Record) String() string {
	return fmt.Sprintf("Layout HKL: 0x%08x | Language ID: 0x%04x", r.HKL, r.LangID)
}

// Lister returns the raw layout handles installed on the system
type Lister interface {
	List() ([]uint32, error)
}

// Print writes one line per layout handle
func Print(w io.Writer, hkls []uint32) error {
	for _, hkl := range hkls {
		if _, err := fmt.Fprintln(w, NewRecord(hkl)); err != nil {
			return err
		}
	}
	return nil
}

// Run lists the installed layouts and prints them
func Run(w io.Writer, lister Lister) error {
	hkls, err := lister.List()
	if err != nil {
		return fmt.Errorf("failed to list keyboard layouts: %w", err)
	}
	return Print(w, hkls)
}
