package models

// DashboardStats is the compact summary shown on the main dashboard.
type DashboardStats struct {
	TotalInvestment float64 `json:"totalInvestment"`
	TotalProfit     float64 `json:"totalProfit"`
	NetProfit       float64 `json:"netProfit"`
	TotalRecords    int     `json:"totalRecords"`
	TotalSchedules  int     `json:"totalSchedules"`
	WinRate         float64 `json:"winRate"`
}

// AnalyticsValue is a single labelled metric.
type AnalyticsValue struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
}

// AnalyticsReport is the detailed breakdown served by the analytics
// endpoints. All monetary figures derive from the records matched by the
// request's query.
type AnalyticsReport struct {
	TotalInvestment  float64 `json:"totalInvestment"`
	TotalProfit      float64 `json:"totalProfit"`
	TotalLoss        float64 `json:"totalLoss"`
	NetProfit        float64 `json:"netProfit"`
	TotalBets        int     `json:"totalBets"`
	WinningBets      int     `json:"winningBets"`
	LosingBets       int     `json:"losingBets"`
	WinPercentage    float64 `json:"winPercentage"`
	AverageBetAmount float64 `json:"averageBetAmount"`
	BestProfit       float64 `json:"bestProfit"`
	WorstLoss        float64 `json:"worstLoss"`

	SportWiseStats   map[string]SportStats `json:"sportWiseStats"`
	MonthlyData      []MonthlyData         `json:"monthlyData"`
	RecentActivities []RecentActivity      `json:"recentActivities"`
}

// SportStats is the per-sport slice of the report.
type SportStats struct {
	Investment    float64 `json:"investment"`
	Profit        float64 `json:"profit"`
	TotalBets     int     `json:"totalBets"`
	WinningBets   int     `json:"winningBets"`
	WinPercentage float64 `json:"winPercentage"`
}

// MonthlyData is a per-month bucket keyed by YYYY-MM, used for charts.
type MonthlyData struct {
	Month      string  `json:"month"`
	Investment float64 `json:"investment"`
	Profit     float64 `json:"profit"`
	TotalBets  int     `json:"totalBets"`
}

// RecentActivity is a single entry in the report's latest-records feed.
type RecentActivity struct {
	MatchName string  `json:"matchName"`
	SportType string  `json:"sportType"`
	Amount    float64 `json:"amount"`
	Profit    float64 `json:"profit"`
	Date      string  `json:"date"`
	Result    string  `json:"result"`
}
