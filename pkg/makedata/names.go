package makedata

var firstNames = []string{
	"Aaliyah", "Abel", "Ada", "Adrian", "Alma", "Amos", "Ann", "Arlo",
	"Beatrice", "Bennett", "Bianca", "Boris", "Camila", "Cedric", "Clara", "Cyrus",
	"Dalia", "Damon", "Delia", "Dexter", "Edith", "Elias", "Elsa", "Emmett",
	"Fatima", "Felix", "Fiona", "Floyd", "Gemma", "Gideon", "Greta", "Gustavo",
	"Hana", "Harvey", "Hazel", "Hugo", "Ines", "Ira", "Isla", "Ivan",
	"Jada", "Jasper", "Joan", "Julian", "Kai", "Keira", "Kenji", "Kira",
	"Lena", "Leon", "Lucia", "Luther", "Mabel", "Marco", "Mira", "Moses",
	"Nadia", "Nico", "Nora", "Otis", "Olive", "Omar", "Pearl", "Percy",
	"Quinn", "Rafael", "Rosa", "Rufus", "Sage", "Silas", "Sofia", "Stella",
	"Tessa", "Theo", "Uma", "Vera", "Victor", "Wanda", "Wes", "Yara", "Zane",
}

var lastNames = []string{
	"Abbott", "Acosta", "Baker", "Barnes", "Bishop", "Brennan", "Carver", "Chen",
	"Collins", "Cruz", "Dalton", "Diaz", "Doyle", "Ellis", "Erickson", "Farley",
	"Fischer", "Flores", "Garner", "Goldberg", "Gomez", "Haley", "Hansen", "Hayes",
	"Ibarra", "Ingram", "Jensen", "Jimenez", "Kaur", "Keller", "Kowalski", "Lambert",
	"Lee", "Lopez", "Madsen", "Marsh", "Moreno", "Nakamura", "Nash", "Novak",
	"Okafor", "Olsen", "Ortiz", "Patel", "Pierce", "Quintero", "Ramos", "Reyes",
	"Rhodes", "Sato", "Schmidt", "Shaw", "Sullivan", "Tanaka", "Torres", "Turner",
	"Underwood", "Vargas", "Vance", "Walsh", "Weber", "Whitaker", "Xu", "Young",
	"Yilmaz", "Zamora", "Zimmerman",
}
