package domain

import "time"

// ChartRow é a linha plana consumida pelos componentes de gráfico
type ChartRow map[string]any

// Report é o envelope devolvido para cada widget
type Report struct {
	ReportID    string     `json:"report_id"`
	Widget      string     `json:"widget"`
	GeneratedAt time.Time  `json:"generated_at"`
	Rows        []ChartRow `json:"rows"`
	Summary     ChartRow   `json:"summary,omitempty"`
}

// OverviewReport agrupa os relatórios do painel inicial por widget
type OverviewReport struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Reports     map[string]*Report `json:"reports"`
}
