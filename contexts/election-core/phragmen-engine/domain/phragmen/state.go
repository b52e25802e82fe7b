package phragmen

// State owns every mutable per-index array of a single election run. Voters
// and candidates are read-only reference data once indexed; all numeric
// bookkeeping lives here, keyed by the indices BuildIndex assigned. A state
// must never be shared between two logical elections.
type State struct {
	Voters     []Voter
	Candidates []Candidate
	Edges      []Edge

	// VoterLoad tracks the maximum load over each voter's edges, never a
	// sum: it is the time at which the voter's support is fully committed.
	VoterLoad  []float64
	EdgeLoad   []float64
	EdgeWeight []float64

	CandidateApproval []float64
	CandidateSupport  []float64
	CandidateScore    []float64
	CandidateElected  []bool
	Elected           map[int]struct{}

	scoreNumerator   []float64
	scoreDenominator []float64
}

// NewState builds the initial state: all loads, weights, scores, and support
// zero; approval precomputed as the budget sum of each candidate's approvers;
// score denominators at the neutral 1.0; nothing elected.
func NewState(voters []Voter, candidates []Candidate) *State {
	edges := make([]Edge, 0)
	for _, voter := range voters {
		edges = append(edges, voter.Edges...)
	}

	approval := make([]float64, len(candidates))
	for _, voter := range voters {
		for _, edge := range voter.Edges {
			approval[edge.CandidateIndex] += voter.Budget
		}
	}

	denominator := make([]float64, len(candidates))
	for i := range denominator {
		denominator[i] = 1
	}

	return &State{
		Voters:     voters,
		Candidates: candidates,
		Edges:      edges,

		VoterLoad:  make([]float64, len(voters)),
		EdgeLoad:   make([]float64, len(edges)),
		EdgeWeight: make([]float64, len(edges)),

		CandidateApproval: approval,
		CandidateSupport:  make([]float64, len(candidates)),
		CandidateScore:    make([]float64, len(candidates)),
		CandidateElected:  make([]bool, len(candidates)),
		Elected:           make(map[int]struct{}),

		scoreNumerator:   make([]float64, len(candidates)),
		scoreDenominator: denominator,
	}
}

// NewStateFrom deep-copies every array of src while pairing the copy with
// the given voter/candidate lists. Mutation is otherwise irreversible, so
// this is the snapshot/branch construction mode.
func NewStateFrom(voters []Voter, candidates []Candidate, src *State) *State {
	elected := make(map[int]struct{}, len(src.Elected))
	for index := range src.Elected {
		elected[index] = struct{}{}
	}
	return &State{
		Voters:     voters,
		Candidates: candidates,
		Edges:      append([]Edge(nil), src.Edges...),

		VoterLoad:  append([]float64(nil), src.VoterLoad...),
		EdgeLoad:   append([]float64(nil), src.EdgeLoad...),
		EdgeWeight: append([]float64(nil), src.EdgeWeight...),

		CandidateApproval: append([]float64(nil), src.CandidateApproval...),
		CandidateSupport:  append([]float64(nil), src.CandidateSupport...),
		CandidateScore:    append([]float64(nil), src.CandidateScore...),
		CandidateElected:  append([]bool(nil), src.CandidateElected...),
		Elected:           elected,

		scoreNumerator:   append([]float64(nil), src.scoreNumerator...),
		scoreDenominator: append([]float64(nil), src.scoreDenominator...),
	}
}

// Clone is NewStateFrom with the same lists.
func (s *State) Clone() *State {
	return NewStateFrom(s.Voters, s.Candidates, s)
}

// SetLoad assigns the edge's load and reconciles the voter's load as the
// running maximum over its edges.
func (s *State) SetLoad(edge Edge, load float64) {
	s.EdgeLoad[edge.Index] = load
	if load > s.VoterLoad[edge.VoterIndex] {
		s.VoterLoad[edge.VoterIndex] = load
	}
}

// SetWeight assigns the edge's weight and accumulates it into the
// candidate's support total.
func (s *State) SetWeight(edge Edge, weight float64) {
	s.EdgeWeight[edge.Index] = weight
	s.CandidateSupport[edge.CandidateIndex] += weight
}

func (s *State) SetScore(candidateIndex int, score float64) {
	s.CandidateScore[candidateIndex] = score
}

func (s *State) Elect(candidate Candidate) {
	s.CandidateElected[candidate.Index] = true
	s.Elected[candidate.Index] = struct{}{}
}

func (s *State) Unelect(candidate Candidate) {
	s.CandidateElected[candidate.Index] = false
	delete(s.Elected, candidate.Index)
}

// LoadsToWeights derives the weight view from loads: each voter's budget is
// split across its edges in proportion to edge load. Weights and support are
// rebuilt from scratch so repeated conversion is stable.
func (s *State) LoadsToWeights() {
	for i := range s.EdgeWeight {
		s.EdgeWeight[i] = 0
	}
	for i := range s.CandidateSupport {
		s.CandidateSupport[i] = 0
	}
	for _, voter := range s.Voters {
		load := s.VoterLoad[voter.Index]
		if load <= 0 {
			continue
		}
		for _, edge := range voter.Edges {
			s.SetWeight(edge, voter.Budget*s.EdgeLoad[edge.Index]/load)
		}
	}
}

// WeightsToLoads is the exact inverse of LoadsToWeights: edge load is
// weight scaled back by voterload/budget. Voter loads are left untouched;
// a recovered edge load never exceeds the voter's running maximum.
func (s *State) WeightsToLoads() {
	for _, voter := range s.Voters {
		load := s.VoterLoad[voter.Index]
		if load <= 0 {
			continue
		}
		for _, edge := range voter.Edges {
			s.SetLoad(edge, s.EdgeWeight[edge.Index]*load/voter.Budget)
		}
	}
}
