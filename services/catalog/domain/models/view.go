package models

import "fmt"

// ViewState tells a client which panel to render for a result set.
type ViewState string

const (
	// ViewStart means no search has been performed yet.
	ViewStart ViewState = "start"
	// ViewEmpty means a search ran and matched nothing.
	ViewEmpty ViewState = "empty"
	// ViewResults carries one or more records.
	ViewResults ViewState = "results"
	// ViewMessage carries free text from the assistant instead of records.
	ViewMessage ViewState = "message"
)

// Default view copy.
const (
	StartTitle   = "Start Your Search"
	StartMessage = "Search for a product to compare prices across stores"
	NoItemsTitle = "No items found matching your criteria"
	AdjustHint   = "Try adjusting your filters or search term"
)

// ViewMessages holds caller-supplied headlines for the start and empty
// states. Blank fields use StartTitle and NoItemsTitle.
type ViewMessages struct {
	Start string `json:"start,omitempty"`
	Empty string `json:"empty,omitempty"`
}

// OrDefault fills blank fields with the default copy.
func (m ViewMessages) OrDefault() ViewMessages {
	if m.Start == "" {
		m.Start = StartTitle
	}
	if m.Empty == "" {
		m.Empty = NoItemsTitle
	}
	return m
}

// ResultView is the outcome of a search, ready for display.
type ResultView struct {
	State   ViewState     `json:"state"`
	Title   string        `json:"title"`
	Message string        `json:"message,omitempty"`
	Count   int           `json:"count"`
	Results []PriceRecord `json:"results"`
}

// StartView is the "no search performed yet" state. A blank title uses
// StartTitle.
func StartView(title string) ResultView {
	if title == "" {
		title = StartTitle
	}
	return ResultView{State: ViewStart, Title: title, Message: StartMessage, Results: []PriceRecord{}}
}

// EmptyView is a searched-but-nothing-found state with a caller-chosen title.
func EmptyView(title string) ResultView {
	return ResultView{State: ViewEmpty, Title: title, Message: AdjustHint, Results: []PriceRecord{}}
}

// MessageView carries assistant text with no records.
func MessageView(title, message string) ResultView {
	return ResultView{State: ViewMessage, Title: title, Message: message, Results: []PriceRecord{}}
}

// ResultsView wraps records. title may be empty, in which case the default
// "N Results Found" is used. An empty records slice yields the default
// empty view instead.
func ResultsView(title string, records []PriceRecord) ResultView {
	if len(records) == 0 {
		return EmptyView(NoItemsTitle)
	}
	if title == "" {
		title = fmt.Sprintf("%d Results Found", len(records))
	}
	return ResultView{State: ViewResults, Title: title, Count: len(records), Results: records}
}
