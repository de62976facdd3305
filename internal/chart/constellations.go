// Package chart contains the projection and disc-layout pipeline: the
// horizon visibility pass, the polar disc mapping, and the renderer
// that turns projected stars into canvas primitives.
package chart

// Edge is one asterism line segment between two stars identified by
// their Hipparcos numbers.
type Edge struct {
	A, B int
}

// Constellations maps constellation name to its asterism segments.
// Compiled constant, never mutated at runtime.
var Constellations = map[string][]Edge{
	"Orion": {
		{26727, 26311}, // Betelgeuse to Bellatrix
		{26311, 25930}, // Bellatrix to Mintaka
		{25930, 26727}, // Mintaka to Alnilam
		{26727, 27366}, // Alnilam to Alnitak
		{27366, 27989}, // Alnitak to Saiph
		{27989, 29426}, // Saiph to Rigel
		{29426, 25930}, // Rigel to Mintaka
	},
	"Taurus": {
		{25428, 26451}, // Aldebaran to Ain (Hyades cluster)
		{26451, 27913}, // Ain to Hyadum I
		{27913, 28380}, // Hyadum I to Chamukuy
		{28380, 29434}, // Chamukuy to Alcyone (Pleiades cluster)
		{29434, 32349}, // Alcyone to Atlas
		{32349, 31681}, // Atlas to Electra
	},
	"Gemini": {
		{31637, 30343}, // Castor to Pollux
		{30343, 29655}, // Pollux to Wasat
		{29655, 28910}, // Wasat to Mekbuda
		{28910, 28734}, // Mekbuda to Alhena
		{28734, 27673}, // Alhena to Tejat Posterior
	},
	"Auriga": {
		{24608, 28380}, // Capella to Menkalinan
		{28380, 28360}, // Menkalinan to Mahasim
		{28360, 25428}, // Mahasim to Elnath (shared with Taurus)
		{25428, 24608}, // Elnath to Capella
	},
	"Canis Major": {
		{32349, 33165}, // Sirius to Mirzam
		{33165, 34444}, // Mirzam to Aludra
		{34444, 33579}, // Aludra to Wezen
		{33579, 32349}, // Wezen to Sirius
	},
	"Ursa Major": {
		{54061, 53910}, // Dubhe to Merak
		{53910, 58001}, // Merak to Phecda
		{58001, 59774}, // Phecda to Megrez
		{59774, 65378}, // Megrez to Alioth
		{65378, 67301}, // Alioth to Mizar
		{67301, 68127}, // Mizar to Alkaid
	},
	"Perseus": {
		{15863, 14576}, // Mirfak to Algol
		{15863, 13654}, // Mirfak to Atik
		{13654, 13268}, // Atik to Menkib
		{13268, 14576}, // Menkib to Algol
	},
	"Cancer": {
		{44066, 42911}, // Acubens to Asellus Australis
		{42911, 42806}, // Asellus Australis to Asellus Borealis
		{42806, 41909}, // Asellus Borealis to Tegmine
	},
}

// RequiredHIPs returns the set of every Hipparcos number referenced by
// an edge. Stars in this set must survive the visibility pass even when
// below the horizon, or edges would silently lose endpoints at render
// time.
func RequiredHIPs() map[int]struct{} {
	req := make(map[int]struct{}, 64)
	for _, edges := range Constellations {
		for _, e := range edges {
			req[e.A] = struct{}{}
			req[e.B] = struct{}{}
		}
	}
	return req
}
