package reconcile_statuses

// Response итоги одного прохода сверки
type Response struct {
	Completed int64 `json:"completed"`
	Started   int64 `json:"started"`
	Cancelled int64 `json:"cancelled"`
}
