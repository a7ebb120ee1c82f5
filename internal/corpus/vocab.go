// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

// Size is the number of records in every generated corpus.
const Size = 5000

var years = []int{2019, 2020, 2021, 2022, 2023, 2024}

var yearWeights = []float64{0.05, 0.10, 0.15, 0.25, 0.35, 0.10}

var journals = []string{
	"Nature", "Science", "Cell", "The Lancet", "NEJM", "PLOS ONE",
	"BMJ", "JAMA", "Nature Medicine", "Science Translational Medicine",
	"Cell Host & Microbe", "Journal of Virology", "PNAS", "Nature Communications",
	"eLife", "Frontiers in Microbiology", "Virology", "Antiviral Research",
}

var sources = []string{"PMC", "WHO", "arXiv", "bioRxiv", "medRxiv"}

var sourceWeights = []float64{0.6, 0.15, 0.1, 0.1, 0.05}

var authorCounts = []int{1, 2, 3, 4, 5, 6, 7, 8}

var authorWeights = []float64{0.10, 0.20, 0.25, 0.20, 0.15, 0.05, 0.03, 0.02}

// titleTerms holds the four vocabularies a title is assembled from, in
// title position order.
var titleTerms = [4][]string{
	{"SARS-CoV-2", "COVID-19", "coronavirus", "pandemic", "viral", "respiratory"},
	{"infection", "transmission", "vaccine", "treatment", "therapy", "diagnosis"},
	{"symptoms", "patients", "clinical", "epidemiological", "molecular", "genetic"},
	{"analysis", "study", "research", "investigation", "characterization", "evaluation"},
}

const (
	abstractMean = 1200.0
	abstractSD   = 300.0
	abstractMin  = 500
	maxDay       = 28
)

// Journals returns the journal vocabulary in declaration order.
func Journals() []string {
	return append([]string(nil), journals...)
}

// Sources returns the source vocabulary in declaration order.
func Sources() []string {
	return append([]string(nil), sources...)
}

// YearBounds returns the smallest and largest year the generator emits.
func YearBounds() (int, int) {
	return years[0], years[len(years)-1]
}

// AuthorBounds returns the smallest and largest author count the generator emits.
func AuthorBounds() (int, int) {
	return authorCounts[0], authorCounts[len(authorCounts)-1]
}
