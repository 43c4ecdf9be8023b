package sample

import (
	"fmt"

	"github.com/hupe1980/pbwt/internal/dict"
)

// Record is the metadata of one individual.
//
// IsMale and IsFemale are independent; both may be false and nothing
// prevents both being true.
type Record struct {
	ID         int
	Father     int // individual id, 0 if unknown
	Mother     int // individual id, 0 if unknown
	Family     int // population registry id, 0 if unknown
	Population int // population registry id, 0 if unknown
	IsMale     bool
	IsFemale   bool
}

// Info carries the optional fields of an Add call. Empty strings are absent.
type Info struct {
	Father     string
	Mother     string
	Family     string
	Population string
	Sex        string
}

// Store is a registry of individuals and their records.
type Store struct {
	names   *dict.Dict
	pops    *dict.Dict
	records []Record
}

// NewStore creates an empty store. Record 0 is the sentinel.
func NewStore() *Store {
	return &Store{
		names:   dict.New(),
		pops:    dict.New(),
		records: make([]Record, 1, 4096),
	}
}

// Add registers name if it is new and writes every present field of info
// into its record, overwriting earlier values. Parents are registered as
// individuals in their own right. It returns the individual id of name.
func (s *Store) Add(name string, info Info) int {
	id := s.register(name)

	if info.Father != "" {
		father := s.register(info.Father)
		s.records[id].Father = father
	}
	if info.Mother != "" {
		mother := s.register(info.Mother)
		s.records[id].Mother = mother
	}
	if info.Family != "" {
		s.records[id].Family, _ = s.pops.Add(info.Family)
	}
	if info.Population != "" {
		s.records[id].Population, _ = s.pops.Add(info.Population)
	}
	if info.Sex != "" {
		switch ParseSex(info.Sex) {
		case SexMale:
			s.records[id].IsMale = true
		case SexFemale:
			s.records[id].IsFemale = true
		}
	}

	return id
}

// Register is Add without any optional fields.
func (s *Store) Register(name string) int {
	return s.Add(name, Info{})
}

func (s *Store) register(name string) int {
	id, added := s.names.Add(name)
	if added {
		s.records = append(s.records, Record{ID: id})
	}
	return id
}

// Lookup returns the id of an already registered individual.
func (s *Store) Lookup(name string) (int, bool) {
	return s.names.Lookup(name)
}

// Len returns the number of records, including the sentinel.
func (s *Store) Len() int {
	return len(s.records)
}

// RecordAt returns a copy of the record for id.
func (s *Store) RecordAt(id int) (Record, error) {
	if id < 0 || id >= len(s.records) {
		return Record{}, &RangeError{What: "sample", Index: id, Limit: len(s.records)}
	}
	return s.records[id], nil
}

// Name returns the registered name of individual id.
func (s *Store) Name(id int) (string, error) {
	rec, err := s.RecordAt(id)
	if err != nil {
		return "", err
	}
	return s.names.Name(rec.ID)
}

// PopulationName returns the population name of individual id,
// or "" if none was recorded.
func (s *Store) PopulationName(id int) (string, error) {
	rec, err := s.RecordAt(id)
	if err != nil {
		return "", err
	}
	return s.popName(rec.Population)
}

// FamilyName returns the family name of individual id,
// or "" if none was recorded.
func (s *Store) FamilyName(id int) (string, error) {
	rec, err := s.RecordAt(id)
	if err != nil {
		return "", err
	}
	return s.popName(rec.Family)
}

func (s *Store) popName(id int) (string, error) {
	if id == dict.Unset {
		return "", nil
	}
	name, err := s.pops.Name(id)
	if err != nil {
		return "", fmt.Errorf("population registry: %w", err)
	}
	return name, nil
}
