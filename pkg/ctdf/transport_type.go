package ctdf

// TransportMode is a value of the backend's TransportModeEnum used to filter trip searches.
type TransportMode string

//goland:noinspection GoUnusedConst
const (
	TransportModeHighSpeedTrain TransportMode = "HIGH_SPEED_TRAIN"
	TransportModeIntercity      TransportMode = "INTERCITY"
	TransportModeInterregio     TransportMode = "INTERREGIO"
	TransportModeRegio          TransportMode = "REGIO"
	TransportModeUrbanTrain     TransportMode = "URBAN_TRAIN"
	TransportModeSpecialTrain   TransportMode = "SPECIAL_TRAIN"
	TransportModeShip           TransportMode = "SHIP"
	TransportModeBus            TransportMode = "BUS"
	TransportModeTramway        TransportMode = "TRAMWAY"
	TransportModeCableway       TransportMode = "CABLEWAY_GONDOLA_CHAIRLIFT_FUNICULAR"
)

// AllTransportModes is every mode the trip search knows about, in the order the backend lists them.
var AllTransportModes = []TransportMode{
	TransportModeHighSpeedTrain,
	TransportModeIntercity,
	TransportModeInterregio,
	TransportModeRegio,
	TransportModeUrbanTrain,
	TransportModeSpecialTrain,
	TransportModeShip,
	TransportModeBus,
	TransportModeTramway,
	TransportModeCableway,
}

type OccupancyFilter string

const (
	OccupancyFilterAll OccupancyFilter = "ALL"
)
