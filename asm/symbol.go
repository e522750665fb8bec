package asm

import (
	"iter"
)

// Label is a named address.
type Label struct {
	Name    string
	Address uint16
}

// SymbolTable is an insertion ordered map of label names to addresses.
type SymbolTable struct {
	labels []Label
	index  map[string]int
}

// Define adds a label. Redefining a label is an error.
func (st *SymbolTable) Define(name string, address uint16) (err error) {
	if _, ok := st.index[name]; ok {
		err = ErrLabelDuplicate(name)
		return
	}

	if st.index == nil {
		st.index = make(map[string]int, 16)
	}
	st.index[name] = len(st.labels)
	st.labels = append(st.labels, Label{Name: name, Address: address})

	return
}

// Lookup finds a label by its qualified name.
func (st *SymbolTable) Lookup(name string) (address uint16, ok bool) {
	n, ok := st.index[name]
	if !ok {
		return
	}

	return st.labels[n].Address, true
}

// Len returns the number of labels defined.
func (st *SymbolTable) Len() int {
	return len(st.labels)
}

// Labels iterates the labels in definition order.
func (st *SymbolTable) Labels() iter.Seq[Label] {
	return func(yield func(Label) bool) {
		for _, label := range st.labels {
			if !yield(label) {
				return
			}
		}
	}
}
