// Package featured picks the projects previewed on the home page.
//
// The first paint always uses Initial so server and client agree on the
// markup; Sample replaces it once the page is interactive.
package featured

import (
	"math/rand/v2"
	"sync"

	"github.com/Khanr7433/portfolio/internal/catalog"
)

// DefaultCount is how many projects the home page previews.
const DefaultCount = 5

// Sampler draws uniformly random featured subsets.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Sampler backed by src. A nil src uses a randomly seeded PCG.
func New(src rand.Source) *Sampler {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Sampler{rng: rand.New(src)}
}

// Initial returns the first count projects in catalog order.
func Initial(c *catalog.Catalog, count int) []catalog.Project {
	return prefix(c.All(), count)
}

// Sample shuffles the whole catalog and returns the first count projects.
func (s *Sampler) Sample(c *catalog.Catalog, count int) []catalog.Project {
	all := c.All()
	s.mu.Lock()
	s.rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	s.mu.Unlock()
	return prefix(all, count)
}

func prefix(all []catalog.Project, count int) []catalog.Project {
	if count <= 0 {
		return []catalog.Project{}
	}
	if count > len(all) {
		count = len(all)
	}
	return all[:count:count]
}
