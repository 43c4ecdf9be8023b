// Package sample holds per-individual metadata for haplotype matrices.
//
// A Store owns two name registries, one for individuals and one shared by
// populations and families, and an append-only array of Records indexed by
// individual id. Id 0 is reserved in both registries and record 0 is a
// sentinel, so a zero Father, Mother, Family or Population means "unknown".
//
// Records are created the first time a name is seen, whether as a sample or
// as somebody's parent, and are updated in place by later calls:
//
//	s := sample.NewStore()
//	child := s.Add("HG00733", sample.Info{Father: "HG00731", Mother: "HG00732", Sex: "F"})
//	s.Add("HG00733", sample.Info{Population: "PUR"})
//
//	rec, _ := s.RecordAt(child)
//	pop, _ := s.PopulationName(child) // "PUR"
//
// A Store is not safe for concurrent use. Construct one per session and let
// it go out of scope when the session ends.
package sample
