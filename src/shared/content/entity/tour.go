package contententity

type TicketStatus string

const (
	TicketsAvailable TicketStatus = "available"
	TicketsLimited   TicketStatus = "limited"
	SoldOut          TicketStatus = "sold-out"
)

type TourDateFields struct {
	Venue        string       `json:"venue"`
	City         string       `json:"city"`
	Country      string       `json:"country"`
	Date         string       `json:"date"`
	Time         string       `json:"time"`
	TicketStatus TicketStatus `json:"ticketStatus"`
	TicketLink   string       `json:"ticketLink,omitempty"`
	Description  string       `json:"description,omitempty"`
	Featured     bool         `json:"featured"`
}

type TourDate = Record[TourDateFields]
