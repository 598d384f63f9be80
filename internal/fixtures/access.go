package fixtures

import "math/rand"

// ValidCredentials returns the valid login records in declaration order.
func (d *Dataset) ValidCredentials() []UserCredential {
	return append([]UserCredential(nil), d.validUsers...)
}

// InvalidCredentials returns the invalid login records in declaration order.
func (d *Dataset) InvalidCredentials() []UserCredential {
	return append([]UserCredential(nil), d.invalidUsers...)
}

// Products returns the catalog records in declaration order.
func (d *Dataset) Products() []Product {
	return append([]Product(nil), d.products...)
}

// ProductByName returns the product whose display name matches exactly.
func (d *Dataset) ProductByName(name string) (Product, bool) {
	for _, p := range d.products {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}

// SampleProducts returns min(n, |products|) distinct products chosen
// uniformly at random without replacement. Sampling operates on a private
// copy; the shared collection is never reordered. Selection is unseeded, so
// callers must assert cardinality and internal consistency, never the
// identity of a particular subset.
func (d *Dataset) SampleProducts(n int) []Product {
	return sampleProducts(d.Products(), n, rand.Shuffle)
}

// SampleProductsWith is SampleProducts drawing from a caller-owned random
// source, for reproducible runs.
func (d *Dataset) SampleProductsWith(rng *rand.Rand, n int) []Product {
	return sampleProducts(d.Products(), n, rng.Shuffle)
}

func sampleProducts(cp []Product, n int, shuffle func(int, func(i, j int))) []Product {
	if n <= 0 {
		return []Product{}
	}
	shuffle(len(cp), func(i, j int) { cp[i], cp[j] = cp[j], cp[i] })
	if n < len(cp) {
		cp = cp[:n]
	}
	return cp
}
