package deck

// Built-in Welsh study decks. Slashes mark alternative accepted answers.

func init() {
	Register("welsh-greetings", "Welsh greetings & courtesy", welshGreetings)
	Register("welsh-numbers", "Welsh numbers 1-12", welshNumbers)
	Register("welsh-colours", "Welsh colours", welshColours)
	Register("welsh-basics", "Welsh everyday words", welshBasics)
}

var welshGreetings = []Pair{
	{Front: "Bore da", Back: "Good morning"},
	{Front: "Prynhawn da", Back: "Good afternoon"},
	{Front: "Noswaith dda", Back: "Good evening"},
	{Front: "Nos da", Back: "Good night"},
	{Front: "Sut mae?", Back: "How are you?"},
	{Front: "Croeso", Back: "Welcome"},
	{Front: "Croeso i Gymru", Back: "Welcome to Wales"},
	{Front: "Diolch", Back: "Thank you / Thanks"},
	{Front: "Diolch yn fawr", Back: "Thank you very much / Thanks very much"},
	{Front: "Os gwelwch yn dda", Back: "Please"},
	{Front: "Esgusodwch fi", Back: "Excuse me"},
	{Front: "Mae'n ddrwg gen i", Back: "I'm sorry / Sorry"},
	{Front: "Hwyl fawr", Back: "Goodbye / Bye"},
	{Front: "Hwyl am y tro", Back: "Bye for now"},
	{Front: "Iechyd da", Back: "Cheers / Good health"},
	{Front: "Dim diolch", Back: "No thank you / No thanks"},
}

var welshNumbers = []Pair{
	{Front: "Un", Back: "One / 1"},
	{Front: "Dau", Back: "Two / 2"},
	{Front: "Tri", Back: "Three / 3"},
	{Front: "Pedwar", Back: "Four / 4"},
	{Front: "Pump", Back: "Five / 5"},
	{Front: "Chwech", Back: "Six / 6"},
	{Front: "Saith", Back: "Seven / 7"},
	{Front: "Wyth", Back: "Eight / 8"},
	{Front: "Naw", Back: "Nine / 9"},
	{Front: "Deg", Back: "Ten / 10"},
	{Front: "Un ar ddeg", Back: "Eleven / 11"},
	{Front: "Deuddeg", Back: "Twelve / 12"},
}

var welshColours = []Pair{
	{Front: "Coch", Back: "Red"},
	{Front: "Glas", Back: "Blue"},
	{Front: "Melyn", Back: "Yellow"},
	{Front: "Gwyrdd", Back: "Green"},
	{Front: "Du", Back: "Black"},
	{Front: "Gwyn", Back: "White"},
	{Front: "Llwyd", Back: "Grey / Gray"},
	{Front: "Porffor", Back: "Purple"},
	{Front: "Oren", Back: "Orange"},
	{Front: "Pinc", Back: "Pink"},
	{Front: "Brown", Back: "Brown"},
	{Front: "Arian", Back: "Silver"},
}

var welshBasics = []Pair{
	{Front: "Tŷ", Back: "House"},
	{Front: "Dŵr", Back: "Water"},
	{Front: "Tân", Back: "Fire"},
	{Front: "Môr", Back: "Sea"},
	{Front: "Pêl", Back: "Ball"},
	{Front: "Ci", Back: "Dog"},
	{Front: "Cath", Back: "Cat"},
	{Front: "Bara", Back: "Bread"},
	{Front: "Llaeth", Back: "Milk"},
	{Front: "Caws", Back: "Cheese"},
	{Front: "Afal", Back: "Apple"},
	{Front: "Llyfr", Back: "Book"},
}
