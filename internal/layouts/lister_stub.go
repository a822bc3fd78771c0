//go:build !windows

package layouts

import "fmt"

type SystemLister struct{}

func NewSystemLister() Lister {
	return &SystemLister{}
}

func (l *SystemLister) List() ([]uint32, error) {
	return nil, fmt.Errorf("keyboard layout listing is only available on Windows")
}
