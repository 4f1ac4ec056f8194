package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Contact is one searchable row.
type Contact struct {
	Name  string `yaml:"name"`
	Phone string `yaml:"phone"`
}

type contactsFile struct {
	Contacts []Contact `yaml:"contacts"`
}

var errNoContacts = errors.New("contacts file lists no contacts")

func defaultContacts() []Contact {
	return []Contact{
		{Name: "Ada Lovelace", Phone: "+44 20 7946 0018"},
		{Name: "Alan Turing", Phone: "+44 161 496 0734"},
		{Name: "Grace Hopper", Phone: "(212) 555-0142"},
		{Name: "Edsger W. Dijkstra", Phone: "+31 20 794 6071"},
		{Name: "Barbara Liskov", Phone: "(617) 555-0199"},
		{Name: "Ken Thompson", Phone: "(908) 555-0113"},
		{Name: "Rob Pike", Phone: "(650) 555-0127"},
		{Name: "Frances E. Allen", Phone: "(914) 555-0168"},
		{Name: "Émile Baudot", Phone: "+33 1 70 18 99 00"},
		{Name: "Tony Hoare", Phone: "+44 1865 496 021"},
	}
}

func loadContacts(path string) ([]Contact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read contacts: %w", err)
	}
	return parseContacts(data)
}

func parseContacts(data []byte) ([]Contact, error) {
	var f contactsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse contacts: %w", err)
	}

	out := make([]Contact, 0, len(f.Contacts))
	for i, c := range f.Contacts {
		c.Name = strings.TrimSpace(c.Name)
		c.Phone = strings.TrimSpace(c.Phone)
		if c.Name == "" {
			return nil, fmt.Errorf("contact %d: name is required", i)
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, errNoContacts
	}
	return out, nil
}
