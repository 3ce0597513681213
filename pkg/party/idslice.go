package party

import (
	"errors"
	"io"
	"sort"
)

// IDSlice is a sorted slice of distinct IDs.
type IDSlice []ID

// NewIDSlice returns a sorted copy of partyIDs.
func NewIDSlice(partyIDs []ID) IDSlice {
	ids := make(IDSlice, len(partyIDs))
	copy(ids, partyIDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Valid returns true if the slice is sorted and contains no duplicates.
func (ids IDSlice) Valid() bool {
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			return false
		}
	}
	return true
}

// Contains returns true if id is present.
func (ids IDSlice) Contains(id ID) bool {
	i := sort.Search(len(ids), func(i int) bool { return ids[i] >= id })
	return i < len(ids) && ids[i] == id
}

// ContainsAll returns true if all given ids are present.
func (ids IDSlice) ContainsAll(other IDSlice) bool {
	for _, id := range other {
		if !ids.Contains(id) {
			return false
		}
	}
	return true
}

// Remove returns a copy of the slice with id removed.
func (ids IDSlice) Remove(id ID) IDSlice {
	out := make(IDSlice, 0, len(ids))
	for _, i := range ids {
		if i != id {
			out = append(out, i)
		}
	}
	return out
}

// WriteTo implements io.WriterTo.
func (ids IDSlice) WriteTo(w io.Writer) (int64, error) {
	if ids == nil {
		return 0, io.ErrUnexpectedEOF
	}
	total := int64(0)
	for _, id := range ids {
		n, err := id.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Domain implements hash.WriterToWithDomain.
func (IDSlice) Domain() string { return "IDSlice" }

var errSubsetSize = errors.New("party: subset size exceeds set size")

// Sample returns a uniformly chosen subset of size k, reading randomness
// from rand. The result is sorted.
func (ids IDSlice) Sample(rand io.Reader, k int) (IDSlice, error) {
	if k > len(ids) {
		return nil, errSubsetSize
	}
	// Fisher-Yates over a copy, keeping the first k.
	shuffled := make(IDSlice, len(ids))
	copy(shuffled, ids)
	var buf [2]byte
	for i := len(shuffled) - 1; i > 0; i-- {
		if _, err := io.ReadFull(rand, buf[:]); err != nil {
			return nil, err
		}
		j := int(uint16(buf[0])<<8|uint16(buf[1])) % (i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return NewIDSlice(shuffled[:k]), nil
}
