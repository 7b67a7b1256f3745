// Package extension decides, for non-standard metadata fields, whether they
// are accepted, which global property and value type they correspond to, and
// produces the final de-duplicated definition list for serialization.
//
// The Registry applies one of three policies (drop everything, accept only
// declared fields, accept anything with synthesized definitions) and can
// infer effective value types from the values actually observed in a set,
// degrading safely to text whenever observations are heterogeneous or
// contradict a declaration.
package extension
