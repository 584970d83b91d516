package sigil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lmtlss/scryer/constant"
)

// GrandSealFile is the built-in fallback raster filename.
const GrandSealFile = "the_grand_seal_of_lilith.pbm"

// indexDocument mirrors the verified-sigil index layout. Unknown fields
// are ignored by the decoder.
type indexDocument struct {
	Sigils []indexEntry `json:"sigils"`
}

type indexEntry struct {
	ID          int      `json:"id"`
	PBM         string   `json:"pbm"`
	Entity      string   `json:"entity"`
	SourceTitle string   `json:"source_title"`
	Tradition   string   `json:"tradition"`
	Verified    bool     `json:"verified"`
	Weight      *float64 `json:"weight"`
}

// Entry is one verified sigil in the registry.
type Entry struct {
	ID             int
	Entity         string
	Tradition      string
	PBM            string
	MaskPath       string
	Verified       bool
	Weight         float64
	IsGrandVariant bool
	IsBaseVariant  bool
}

type weightedID struct {
	id     int
	weight float64
}

// Registry is the immutable verified-sigil table: entries, decoded masks
// and the weighted selection table. Rebuilt atomically by LoadRegistry;
// readers never observe a partial table.
type Registry struct {
	Entries     []Entry
	masks       map[int]*Mask
	table       []weightedID
	totalWeight float64

	// GrandSealID / BaseSigilID track the two named Lilith variants,
	// used only to bias weighting.
	GrandSealID int
	BaseSigilID int
}

// resolveRasterPath resolves a raster filename against the ordered
// candidate roots; first existing file wins.
func resolveRasterPath(filename string, roots []string) string {
	for _, root := range roots {
		p := filepath.Join(root, filename)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LoadRegistry parses the index document and decodes every referenced
// raster. Records whose file is missing or malformed are silently
// dropped; a missing or useless index falls back to the built-in grand
// seal entry; if that raster is absent too, the registry is empty and
// every mask-dependent feature is inert.
func LoadRegistry(indexPath string, roots []string) *Registry {
	r := &Registry{
		masks:       make(map[int]*Mask),
		GrandSealID: constant.DefaultSigilID,
		BaseSigilID: constant.DefaultSigilID,
	}

	if data, err := os.ReadFile(indexPath); err == nil {
		var doc indexDocument
		if json.Unmarshal(data, &doc) == nil {
			for _, raw := range doc.Sigils {
				name := strings.TrimSpace(raw.PBM)
				if name == "" {
					continue
				}
				low := strings.ToLower(raw.Entity + " " + raw.SourceTitle + " " + name)
				isLilith := strings.Contains(low, "lilith")
				isGrand := isLilith && strings.Contains(low, "grand")
				isBase := isLilith && strings.Contains(low, "sigil") && !isGrand

				path := resolveRasterPath(name, roots)
				if path == "" {
					continue
				}
				mask := LoadMaskFile(path)
				if mask == nil {
					continue
				}

				weight := 1.0
				if raw.Weight != nil {
					weight = *raw.Weight
				}
				r.Entries = append(r.Entries, Entry{
					ID:             raw.ID,
					Entity:         raw.Entity,
					Tradition:      raw.Tradition,
					PBM:            name,
					MaskPath:       path,
					Verified:       raw.Verified,
					Weight:         weight,
					IsGrandVariant: isGrand,
					IsBaseVariant:  isBase,
				})
				r.masks[raw.ID] = mask
			}
		}
	}

	// Fallback minimal registry if the index yields nothing usable.
	if len(r.Entries) == 0 {
		if sealPath := resolveRasterPath(GrandSealFile, roots); sealPath != "" {
			if mask := LoadMaskFile(sealPath); mask != nil {
				r.Entries = []Entry{{
					ID:        constant.DefaultSigilID,
					Entity:    "Lilith",
					Tradition: "demon",
					PBM:       GrandSealFile,
					MaskPath:  sealPath,
					Verified:  true,
					Weight:    constant.FallbackWeight,
				}}
				r.masks[constant.DefaultSigilID] = mask
			}
		}
	}

	sort.Slice(r.Entries, func(i, j int) bool { return r.Entries[i].ID < r.Entries[j].ID })

	for _, e := range r.Entries {
		if e.IsGrandVariant {
			r.GrandSealID = e.ID
		}
	}
	baseFound := false
	for _, e := range r.Entries {
		if e.IsBaseVariant {
			r.BaseSigilID = e.ID
			baseFound = true
		}
	}
	if !baseFound {
		for _, e := range r.Entries {
			if e.IsGrandVariant {
				// No separate base sigil present: fall back to the seal.
				r.BaseSigilID = e.ID
			}
		}
	}

	for _, e := range r.Entries {
		w := e.Weight
		switch {
		case e.IsGrandVariant:
			// Grand Seal variants carry a slight bonus.
			w = 1.0 + constant.GrandSealWeightBonus
		case e.IsBaseVariant:
			// The standard sigil stays neutral in the pool.
			w = 1.0
		}
		if w < constant.WeightFloor {
			w = constant.WeightFloor
		}
		r.table = append(r.table, weightedID{id: e.ID, weight: w})
		r.totalWeight += w
	}
	if r.totalWeight < constant.WeightFloor {
		r.totalWeight = constant.WeightFloor
	}

	return r
}

// Empty reports whether no masks loaded; mask-dependent features are
// inert in that case.
func (r *Registry) Empty() bool { return len(r.table) == 0 }

// MaskFor returns the decoded mask for an id, nil if unknown.
func (r *Registry) MaskFor(id int) *Mask { return r.masks[id] }

// TotalWeight returns the sum of table weights.
func (r *Registry) TotalWeight() float64 { return r.totalWeight }

// PickWeighted draws an id by cumulative-weight roulette. roll must be a
// uniform sample in [0, 1).
func (r *Registry) PickWeighted(roll float64) int {
	if len(r.table) == 0 {
		return constant.DefaultSigilID
	}
	remain := roll * r.totalWeight
	for _, w := range r.table {
		remain -= w.weight
		if remain <= 0.0 {
			return w.id
		}
	}
	return r.table[len(r.table)-1].id
}
