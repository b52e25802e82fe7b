package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type BallotRequest struct {
	VoterID   string   `json:"voter_id"`
	Budget    float64  `json:"budget"`
	Approvals []string `json:"approvals"`
}

type RunElectionRequest struct {
	Ballots []BallotRequest `json:"ballots"`
	Seats   int             `json:"seats"`
}

type WinnerItem struct {
	CandidateID string  `json:"candidate_id"`
	Index       int     `json:"index"`
	Round       int     `json:"round"`
	Support     float64 `json:"support"`
}

type CandidateTallyItem struct {
	CandidateID string  `json:"candidate_id"`
	Index       int     `json:"index"`
	Approval    float64 `json:"approval"`
	Support     float64 `json:"support"`
	Elected     bool    `json:"elected"`
}

type VoterAllocationItem struct {
	VoterID string  `json:"voter_id"`
	Index   int     `json:"index"`
	Budget  float64 `json:"budget"`
	Load    float64 `json:"load"`
}

type ElectionRunResponse struct {
	RunID          string                `json:"run_id"`
	Seats          int                   `json:"seats"`
	BallotCount    int                   `json:"ballot_count"`
	CandidateCount int                   `json:"candidate_count"`
	Winners        []WinnerItem          `json:"winners"`
	Candidates     []CandidateTallyItem  `json:"candidates"`
	Voters         []VoterAllocationItem `json:"voters"`
	CreatedAt      string                `json:"created_at"`
}

type ElectionRunSummary struct {
	RunID          string   `json:"run_id"`
	Seats          int      `json:"seats"`
	BallotCount    int      `json:"ballot_count"`
	CandidateCount int      `json:"candidate_count"`
	WinnerIDs      []string `json:"winner_ids"`
	CreatedAt      string   `json:"created_at"`
}

type RunListResponse struct {
	Items []ElectionRunSummary `json:"items"`
}

type WinnersResponse struct {
	RunID   string       `json:"run_id"`
	Winners []WinnerItem `json:"winners"`
}
