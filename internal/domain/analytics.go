// Package domain contém as estruturas de dados do domínio da aplicação
package domain

const (
	SaleStatusCompleted = "COMPLETED"
	SaleStatusCancelled = "CANCELLED"
)

// TopProductsLimit é o tamanho máximo do ranking de produtos do overview
const TopProductsLimit = 10

type SalesSummary struct {
	TotalSales    int64   `json:"total_sales"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgTicket     float64 `json:"avg_ticket"`
	DataAvailable bool    `json:"data_available"`
	Message       string  `json:"message,omitempty"`
}

type DataOverview struct {
	Overview       OverviewCounts   `json:"overview"`
	SalesByChannel []ChannelSales   `json:"sales_by_channel"`
	TopProducts    []ProductRevenue `json:"top_products"`
}

type OverviewCounts struct {
	Stores    int64 `json:"stores"`
	Products  int64 `json:"products"`
	Customers int64 `json:"customers"`
	Sales     int64 `json:"sales"`
	Channels  int64 `json:"channels"`
}

type ChannelSales struct {
	Channel      string  `json:"channel"`
	SalesCount   int64   `json:"sales_count"`
	TotalRevenue float64 `json:"total_revenue"`
}

type ProductRevenue struct {
	Product      string  `json:"product"`
	SalesCount   int64   `json:"sales_count"`
	TotalRevenue float64 `json:"total_revenue"`
}

// DataOverviewPending é a resposta degradada do overview enquanto os dados não existem
type DataOverviewPending struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
