package intent

const (
	LogPrefix = "internal.intent"

	// FastPathConfidence is reported by every deterministic extraction.
	FastPathConfidence = 0.95

	VersionRail   = "rail.intent.v1"
	VersionAgenda = "agenda.intent.v1"
)

// Rail intent kinds.
const (
	KindTripsSearch          Kind = "trips.search"
	KindDeparturesList       Kind = "departures.list"
	KindDeparturesWindow     Kind = "departures.window"
	KindArrivalsList         Kind = "arrivals.list"
	KindDisruptionsList      Kind = "disruptions.list"
	KindDisruptionsByStation Kind = "disruptions.by_station"
	KindStationsSearch       Kind = "stations.search"
	KindStationsNearest      Kind = "stations.nearest"
	KindTripsDetail          Kind = "trips.detail"
	KindJourneyDetail        Kind = "journey.detail"
	KindDisruptionsDetail    Kind = "disruptions.detail"
)

// Agenda intent kinds.
const (
	KindAgendaList   Kind = "agenda.list"
	KindAgendaCreate Kind = "agenda.create"
	KindAgendaUpdate Kind = "agenda.update"
	KindAgendaDelete Kind = "agenda.delete"
)

// Slot names as they appear in Missing.
const (
	SlotStationText  = "stationText"
	SlotFromText     = "fromText"
	SlotToText       = "toText"
	SlotViaText      = "viaText"
	SlotDate         = "date"
	SlotFromTime     = "fromTime"
	SlotToTime       = "toTime"
	SlotCtxRecon     = "ctxRecon"
	SlotDateTimeHint = "dateTimeHint"
	SlotJourneyID    = "journeyId"
	SlotTitle        = "title"
	SlotItemRef      = "itemRef"
)

// Soft ranking keys.
const (
	RankFewestTransfers   = "fewest_transfers"
	RankFastest           = "fastest"
	RankEarliestDeparture = "earliest_departure"
	RankEarliestArrival   = "earliest_arrival"
)

// GenericClarification is used when nothing more specific is available.
const GenericClarification = "Sorry, I did not quite get that. Could you rephrase what you need?"
