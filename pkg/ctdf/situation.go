package ctdf

import "encoding/json"

// TemplatedText is backend text with placeholders filled from Arguments.
type TemplatedText struct {
	Template  string         `json:"template"`
	Arguments []TextArgument `json:"arguments,omitempty"`
}

type TextArgument struct {
	Type   string   `json:"type"`
	Values []string `json:"values"`
}

type Notice struct {
	Name       *string         `json:"name,omitempty"`
	Text       *TemplatedText  `json:"text,omitempty"`
	Type       *string         `json:"type,omitempty"`
	Priority   json.RawMessage `json:"priority,omitempty"`
	Advertised bool            `json:"advertised"`
}

// Situation is a disruption (PTSituation) attached to a trip or service journey.
type Situation struct {
	Cause                    *string            `json:"cause,omitempty"`
	BroadcastMessages        []BroadcastMessage `json:"broadcastMessages,omitempty"`
	AffectedStopPointFromIdx json.RawMessage    `json:"affectedStopPointFromIdx,omitempty"`
	AffectedStopPointToIdx   json.RawMessage    `json:"affectedStopPointToIdx,omitempty"`
}

type BroadcastMessage struct {
	ID                 string              `json:"id"`
	Priority           json.RawMessage     `json:"priority,omitempty"`
	Title              *string             `json:"title,omitempty"`
	Detail             *string             `json:"detail,omitempty"`
	DetailShort        *string             `json:"detailShort,omitempty"`
	DistributionPeriod *DistributionPeriod `json:"distributionPeriod,omitempty"`
	Audiences          []Audience          `json:"audiences,omitempty"`
}

type DistributionPeriod struct {
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
}

type Audience struct {
	URLs []AudienceURL `json:"urls,omitempty"`
}

type AudienceURL struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
