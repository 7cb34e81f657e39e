// Package catalog holds the immutable FrontierNav game-data tables: the
// 104-site adjacency graph and the 23-probe inventory catalog. Both are
// shipped as embedded YAML fixtures and parsed once; nothing in this
// package mutates them afterward except OverrideSiteTerritories. The
// fnsolver command does not call it: a run configuration carries no
// territory overrides, so CLI runs use the fixture's territory counts.
package catalog

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// NumPreciousResources is the length of every per-site and per-yield
// precious-resource quantity vector.
const NumPreciousResources = 15

//go:embed testdata/sites.yaml testdata/probes.yaml testdata/resources.yaml
var fixturesFS embed.FS

// ProbeKind identifies which yield formula a probe uses.
type ProbeKind int

const (
	ProbeNone ProbeKind = iota
	ProbeBasic
	ProbeMining
	ProbeResearch
	ProbeBooster
	ProbeStorage
	ProbeDuplicator
	ProbeBattle
)

// String returns the lowercase fixture spelling of the kind.
func (k ProbeKind) String() string {
	switch k {
	case ProbeNone:
		return "none"
	case ProbeBasic:
		return "basic"
	case ProbeMining:
		return "mining"
	case ProbeResearch:
		return "research"
	case ProbeBooster:
		return "booster"
	case ProbeStorage:
		return "storage"
	case ProbeDuplicator:
		return "duplicator"
	case ProbeBattle:
		return "battle"
	default:
		return fmt.Sprintf("ProbeKind(%d)", int(k))
	}
}

func probeKindFromString(s string) (ProbeKind, error) {
	switch s {
	case "none":
		return ProbeNone, nil
	case "basic":
		return ProbeBasic, nil
	case "mining":
		return ProbeMining, nil
	case "research":
		return ProbeResearch, nil
	case "booster":
		return ProbeBooster, nil
	case "storage":
		return ProbeStorage, nil
	case "duplicator":
		return ProbeDuplicator, nil
	case "battle":
		return ProbeBattle, nil
	default:
		return 0, fmt.Errorf("catalog: unknown probe kind %q", s)
	}
}

// Probe is a single catalog entry: an item that can be placed at a site.
// Probes are never mutated after the catalog loads.
type Probe struct {
	ID               int
	Code             string
	Name             string
	Kind             ProbeKind
	ProductionFactor uint32
	RevenueFactor    uint32
	BoostBonus       uint32
	Storage          uint32
}

// Site is a single FrontierNav site. Production, Revenue, MaxTerritories,
// the neighbor graph, and Resources are fixed at load time; Territories
// is the one field OverrideSiteTerritories is allowed to change.
type Site struct {
	ID             int
	Production     uint32
	Revenue        uint32
	Territories    uint32
	MaxTerritories uint32
	// Neighbors holds neighbor site ids as given by the fixture.
	Neighbors []int
	// NeighborIdxs holds the same neighbors pre-resolved to catalog
	// indices, the form the resolver walks.
	NeighborIdxs []int
	Resources    [NumPreciousResources]uint32
}

// Catalog is the loaded, queryable set of sites and probes. All fields
// besides each Site's Territories are immutable after Load returns.
type Catalog struct {
	Sites                 []Site
	Probes                []Probe
	PreciousResourceNames []string

	mu            sync.RWMutex
	siteIdxByID   map[int]int
	probeIdxByCode map[string]int
}

type sitesFixture struct {
	Sites []struct {
		ID             int      `yaml:"id"`
		Production     uint32   `yaml:"production"`
		Revenue        uint32   `yaml:"revenue"`
		Territories    uint32   `yaml:"territories"`
		MaxTerritories uint32   `yaml:"maxTerritories"`
		Neighbors      []int    `yaml:"neighbors"`
		Resources      []uint32 `yaml:"resources"`
	} `yaml:"sites"`
}

type probesFixture struct {
	Probes []struct {
		ID                int    `yaml:"id"`
		Code              string `yaml:"code"`
		Name              string `yaml:"name"`
		Kind              string `yaml:"kind"`
		ProductionFactor  uint32 `yaml:"productionFactor"`
		RevenueFactor     uint32 `yaml:"revenueFactor"`
		BoostBonus        uint32 `yaml:"boostBonus"`
		Storage           uint32 `yaml:"storage"`
	} `yaml:"probes"`
}

type resourcesFixture struct {
	Resources []string `yaml:"resources"`
}

// Load parses the embedded fixtures into a Catalog. It is cheap enough to
// call more than once (each call yields an independent Catalog value, so
// callers that only ever read the tables can safely share one instance
// with Default).
func Load() (*Catalog, error) {
	var resF resourcesFixture
	if b, err := fixturesFS.ReadFile("testdata/resources.yaml"); err != nil {
		return nil, fmt.Errorf("catalog: read resources fixture: %w", err)
	} else if err := yaml.Unmarshal(b, &resF); err != nil {
		return nil, fmt.Errorf("catalog: parse resources fixture: %w", err)
	}
	if len(resF.Resources) != NumPreciousResources {
		return nil, fmt.Errorf("catalog: expected %d precious resources, fixture has %d",
			NumPreciousResources, len(resF.Resources))
	}

	var probesF probesFixture
	if b, err := fixturesFS.ReadFile("testdata/probes.yaml"); err != nil {
		return nil, fmt.Errorf("catalog: read probes fixture: %w", err)
	} else if err := yaml.Unmarshal(b, &probesF); err != nil {
		return nil, fmt.Errorf("catalog: parse probes fixture: %w", err)
	}

	probes := make([]Probe, len(probesF.Probes))
	probeIdxByCode := make(map[string]int, len(probesF.Probes))
	for i, p := range probesF.Probes {
		kind, err := probeKindFromString(p.Kind)
		if err != nil {
			return nil, fmt.Errorf("catalog: probe %q: %w", p.Code, err)
		}
		probes[i] = Probe{
			ID:               p.ID,
			Code:             p.Code,
			Name:             p.Name,
			Kind:             kind,
			ProductionFactor: p.ProductionFactor,
			RevenueFactor:    p.RevenueFactor,
			BoostBonus:       p.BoostBonus,
			Storage:          p.Storage,
		}
		probeIdxByCode[p.Code] = i
	}

	var sitesF sitesFixture
	if b, err := fixturesFS.ReadFile("testdata/sites.yaml"); err != nil {
		return nil, fmt.Errorf("catalog: read sites fixture: %w", err)
	} else if err := yaml.Unmarshal(b, &sitesF); err != nil {
		return nil, fmt.Errorf("catalog: parse sites fixture: %w", err)
	}

	sites := make([]Site, len(sitesF.Sites))
	siteIdxByID := make(map[int]int, len(sitesF.Sites))
	for i, s := range sitesF.Sites {
		var resources [NumPreciousResources]uint32
		if len(s.Resources) != 0 {
			if len(s.Resources) != NumPreciousResources {
				return nil, fmt.Errorf("catalog: site %d: expected %d resource quantities, got %d",
					s.ID, NumPreciousResources, len(s.Resources))
			}
			copy(resources[:], s.Resources)
		}
		sites[i] = Site{
			ID:             s.ID,
			Production:     s.Production,
			Revenue:        s.Revenue,
			Territories:    s.Territories,
			MaxTerritories: s.MaxTerritories,
			Neighbors:      append([]int(nil), s.Neighbors...),
			Resources:      resources,
		}
		siteIdxByID[s.ID] = i
	}
	// Resolve neighbor ids to indices now that every site has an index.
	for i := range sites {
		idxs := make([]int, 0, len(sites[i].Neighbors))
		for _, nid := range sites[i].Neighbors {
			nidx, ok := siteIdxByID[nid]
			if !ok {
				return nil, fmt.Errorf("catalog: site %d references unknown neighbor %d", sites[i].ID, nid)
			}
			idxs = append(idxs, nidx)
		}
		sites[i].NeighborIdxs = idxs
	}

	for _, s := range sites {
		for _, nidx := range s.NeighborIdxs {
			found := false
			for _, back := range sites[nidx].NeighborIdxs {
				if sites[back].ID == s.ID {
					found = true
					break
				}
			}
			if !found {
				return nil, fmt.Errorf("catalog: adjacency asymmetry between site %d and %d", s.ID, sites[nidx].ID)
			}
		}
	}

	return &Catalog{
		Sites:                 sites,
		Probes:                probes,
		PreciousResourceNames: resF.Resources,
		siteIdxByID:           siteIdxByID,
		probeIdxByCode:        probeIdxByCode,
	}, nil
}

// New builds a Catalog from already-constructed sites and probes,
// resolving each site's Neighbors (site ids) into NeighborIdxs. It is
// meant for tests that need a small synthetic catalog rather than the
// full embedded fixture; Load is the production path.
func New(sites []Site, probes []Probe, resourceNames []string) (*Catalog, error) {
	siteIdxByID := make(map[int]int, len(sites))
	for i, s := range sites {
		siteIdxByID[s.ID] = i
	}
	for i := range sites {
		idxs := make([]int, 0, len(sites[i].Neighbors))
		for _, nid := range sites[i].Neighbors {
			nidx, ok := siteIdxByID[nid]
			if !ok {
				return nil, fmt.Errorf("catalog: site %d references unknown neighbor %d", sites[i].ID, nid)
			}
			idxs = append(idxs, nidx)
		}
		sites[i].NeighborIdxs = idxs
	}

	probeIdxByCode := make(map[string]int, len(probes))
	for i, p := range probes {
		probeIdxByCode[p.Code] = i
	}

	return &Catalog{
		Sites:                 sites,
		Probes:                probes,
		PreciousResourceNames: resourceNames,
		siteIdxByID:           siteIdxByID,
		probeIdxByCode:        probeIdxByCode,
	}, nil
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the shared, lazily-loaded process-wide catalog. Most
// callers want this instead of calling Load directly.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Load()
	})
	return defaultCat, defaultErr
}

// SiteIndexOf returns the catalog index of the site with the given id.
func (c *Catalog) SiteIndexOf(id int) (int, bool) {
	idx, ok := c.siteIdxByID[id]
	return idx, ok
}

// ProbeIndexOf returns the catalog index of the probe with the given
// shorthand code (e.g. "M1", "-", "X").
func (c *Catalog) ProbeIndexOf(code string) (int, bool) {
	idx, ok := c.probeIdxByCode[code]
	return idx, ok
}

// OverrideSiteTerritories clamps value to [0, MaxTerritories] and stores
// it on the named site, affecting subsequent yield evaluations. It is the
// one permitted mutation of an otherwise-immutable Catalog.
func (c *Catalog) OverrideSiteTerritories(siteID int, value uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx, ok := c.siteIdxByID[siteID]
	if !ok {
		return fmt.Errorf("catalog: unknown site id %d", siteID)
	}
	if value > c.Sites[idx].MaxTerritories {
		value = c.Sites[idx].MaxTerritories
	}
	c.Sites[idx].Territories = value
	return nil
}

// TerritoriesOf returns the current territory count for a site index,
// taking the read lock so it observes a consistent value concurrently
// with OverrideSiteTerritories.
func (c *Catalog) TerritoriesOf(siteIdx int) uint32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Sites[siteIdx].Territories
}
