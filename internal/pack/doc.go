// Package pack run-length encodes one site of a positional matrix.
//
// The input is an allele vector in sort-rank order, so equal alleles tend to
// form long runs. A packed site is the first allele value as a single byte
// followed by the uvarint length of every run; consecutive runs alternate
// between 0 and 1.
//
// Format:
//
//	[first allele: 1 byte][run 0: uvarint][run 1: uvarint]...
//
// The run lengths must sum to the vector length; Unpack rejects anything else.
package pack
