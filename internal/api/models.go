package api

type ProcessURLQueryRequest struct {
	URLs  []string `json:"urls" description:"Seed URLs to read"`
	Query string   `json:"query" description:"Question to answer from the pages"`
}

type ProcessURLQueryResponse struct {
	Answer  string   `json:"answer" description:"Generated answer"`
	Sources []string `json:"sources" description:"Source URL of every retrieved passage, in retrieval order"`
}

type ProcessURLSummaryRequest struct {
	URLs []string `json:"urls" description:"URLs to summarize"`
}

type ProcessURLSummaryResponse struct {
	Answer string `json:"answer" description:"Structured summary"`
}

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}
