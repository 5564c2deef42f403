// Package inventory loads device inventories from INI files. Each
// section is a device group; each key is a device name mapping to its
// address.
package inventory

import (
	"gopkg.in/ini.v1"
)

// Entry is one device from the inventory.
type Entry struct {
	Name     string
	Hostname string
	Group    string
}

// Load reads an INI inventory. Devices in the default (unnamed)
// section belong to the group "default".
func Load(path string) ([]Entry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, section := range cfg.Sections() {
		group := section.Name()
		if group == ini.DefaultSection {
			group = "default"
		}
		for _, key := range section.Keys() {
			entries = append(entries, Entry{
				Name:     key.Name(),
				Hostname: key.String(),
				Group:    group,
			})
		}
	}
	return entries, nil
}

// Filter returns the entries belonging to group, or all entries when
// group is empty.
func Filter(entries []Entry, group string) []Entry {
	if group == "" {
		return entries
	}
	var out []Entry
	for _, e := range entries {
		if e.Group == group {
			out = append(out, e)
		}
	}
	return out
}
