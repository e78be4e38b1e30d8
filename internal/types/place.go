package types

// Place is a resolved location: the name the user asked about plus the
// canonical display name and coordinates returned by the geocoder.
type Place struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Coordinates Coords `json:"coordinates"`
}
