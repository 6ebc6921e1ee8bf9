package glod

import (
	"encoding/json"
	"math"
	"sort"
)

// CommunityRecord is the canonical JSON shape of a single detected
// community: its id (1-based index), size, sorted members, how many of
// its members also belong to some other community, which members those
// are, and its normalized node-cut Ψ rounded to 4 decimals.
type CommunityRecord struct {
	ID             int      `json:"id"`
	Size           int      `json:"size"`
	Members        []string `json:"members"`
	OverlapCount   int      `json:"overlapCount"`
	OverlapMembers []string `json:"overlapMembers"`
	Psi            float64  `json:"psi"`
}

// Report is the full JSON-serializable report shape returned to CLI
// and API consumers.
type Report struct {
	Communities []CommunityRecord `json:"communities"`
	ShenEQ      float64           `json:"shenEQ"`
	LazarMov    float64           `json:"lazarMov"`
	NicosiaQov  float64           `json:"nicosiaQov"`
}

// Report builds the canonical JSON-serializable report for r,
// computing each community's overlap against every other community
// in the cover.
func (r *Result) Report() Report {
	records := make([]CommunityRecord, len(r.Communities))
	for i, c := range r.Communities {
		overlapMembers := overlapWithOthers(i, r.Communities)
		psi := 0.0
		if i < len(r.PerCommunityPsi) {
			psi = r.PerCommunityPsi[i]
		}

		records[i] = CommunityRecord{
			ID:             i + 1,
			Size:           len(c.Members),
			Members:        c.Members,
			OverlapCount:   len(overlapMembers),
			OverlapMembers: overlapMembers,
			Psi:            round4(psi),
		}
	}

	return Report{
		Communities: records,
		ShenEQ:      round4(r.ShenEQ),
		LazarMov:    round4(r.LazarMov),
		NicosiaQov:  round4(r.NicosiaQov),
	}
}

// MarshalJSON renders the Result in its canonical report shape rather
// than its internal field layout.
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Report())
}

// overlapWithOthers returns the sorted union of members that
// community at index idx shares with every other community in cover.
func overlapWithOthers(idx int, cover Cover) []string {
	self := cover[idx].set()
	shared := make(map[string]struct{})

	for j, other := range cover {
		if j == idx {
			continue
		}
		for _, m := range other.Members {
			if _, ok := self[m]; ok {
				shared[m] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(shared))
	for v := range shared {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// round4 rounds f to 4 decimal places, matching the report's
// float-formatting convention.
func round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
