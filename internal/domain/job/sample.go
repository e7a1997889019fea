package job

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/honeycarbs/resume-assistant/internal/domain"
)

const (
	// SampleSourcePrefix marks records produced by the sample generator
	SampleSourcePrefix = "Sample Data"

	maxSampleJobs  = 20
	minSampleBase  = 60000
	maxSampleBase  = 150000
	sampleSpread   = 20000
	maxSampleDays  = 7
	sampleLinkBase = "https://example.com/jobs/"
)

var (
	sampleCompanies = []string{
		"Google", "Microsoft", "Amazon", "Apple", "Meta", "Netflix", "Tesla",
		"Spotify", "Airbnb", "Uber", "LinkedIn", "Twitter", "Adobe", "Salesforce",
		"Oracle", "IBM", "Intel", "NVIDIA", "Cisco", "VMware",
	}

	sampleTitles = []func(term string) string{
		func(t string) string { return "Senior " + t },
		func(t string) string { return "Junior " + t },
		func(t string) string { return t + " Specialist" },
		func(t string) string { return "Lead " + t },
		func(t string) string { return t + " Manager" },
		func(t string) string { return t + " Analyst" },
		func(t string) string { return t + " Developer" },
		func(t string) string { return t + " Engineer" },
		func(t string) string { return "Principal " + t },
		func(t string) string { return t + " Consultant" },
	}

	sampleJobTypes = []string{"Full-time", "Part-time", "Contract", "Internship"}
	sampleOrigins  = []string{"LinkedIn", "Indeed", "ZipRecruiter", "Company Website"}
)

// IsSampleSource reports whether a Source value was produced by the sample generator
func IsSampleSource(source string) bool {
	return strings.HasPrefix(source, SampleSourcePrefix)
}

// SampleGenerator builds randomized demo postings with a fixed shape
type SampleGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampleGenerator uses rng for all random choices; nil seeds from the clock
func NewSampleGenerator(rng *rand.Rand) *SampleGenerator {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &SampleGenerator{rng: rng}
}

// Generate returns min(q.Count, 20) records with distinct (title, company) pairs
func (g *SampleGenerator) Generate(q domain.SearchQuery) []domain.JobRecord {
	n := min(q.Count, maxSampleJobs)
	if n <= 0 {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	type pair struct{ title, company int }
	used := make(map[pair]struct{}, n)
	out := make([]domain.JobRecord, 0, n)

	for i := range n {
		var p pair
		for {
			p = pair{title: g.rng.IntN(len(sampleTitles)), company: g.rng.IntN(len(sampleCompanies))}
			if _, taken := used[p]; !taken {
				break
			}
		}
		used[p] = struct{}{}

		company := sampleCompanies[p.company]

		jobType := q.JobType
		if !q.FiltersJobType() {
			jobType = sampleJobTypes[g.rng.IntN(len(sampleJobTypes))]
		}

		base := float64(minSampleBase + g.rng.IntN(maxSampleBase-minSampleBase+1))
		top := base + sampleSpread

		days := 1 + g.rng.IntN(maxSampleDays)
		posted := fmt.Sprintf("%d days ago", days)
		if days == 1 {
			posted = "1 day ago"
		}

		out = append(out, domain.JobRecord{
			Title:      sampleTitles[p.title](q.Term),
			Company:    company,
			Location:   q.Location,
			JobType:    jobType,
			Salary:     domain.FormatSalary(&base, &top, "year"),
			DatePosted: posted,
			ApplyLink:  fmt.Sprintf("%s%s-%d", sampleLinkBase, slugify(company), i),
			Source:     fmt.Sprintf("%s (%s)", SampleSourcePrefix, sampleOrigins[g.rng.IntN(len(sampleOrigins))]),
		})
	}

	return out
}

func slugify(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "-")
}
