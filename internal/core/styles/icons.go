package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconGlobe  = "\U000F01E7" // 󰇧
	IconPhone  = "\uf095"     // 
	IconSearch = "\uf002"     // 
	IconPin    = "\uf08d"     // 
	IconCheck  = "\uf00c"     // 
	IconCaret  = "\u25b8"     // ▸
)
