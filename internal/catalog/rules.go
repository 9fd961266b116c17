package catalog

// AliasRule maps any title matching Pattern to a fixed canonical form.
// The first matching alias wins and replaces the whole title.
type AliasRule struct {
	Pattern   string
	Canonical string
}

// RewriteRule is one step of the suffix-stripping cascade. Rules are
// applied in order, each rewriting the output of the previous one.
type RewriteRule struct {
	Pattern     string
	Replacement string
}

// Ruleset is the full normalization configuration. The zero value is
// unusable; construct with DefaultRuleset or build one for tests.
type Ruleset struct {
	Aliases  []AliasRule
	Rewrites []RewriteRule
	Editions []string
}

// DefaultRuleset returns the rules accumulated from observed marketplace
// listings. Order matters in all three lists.
func DefaultRuleset() Ruleset {
	return Ruleset{
		Aliases:  defaultAliases,
		Rewrites: defaultRewrites,
		Editions: defaultEditions,
	}
}

var defaultAliases = []AliasRule{
	{`ACE COMBAT\s*7\s*SKIES\s*UNKNOWN`, "ACE COMBAT 7 SKIES UNKNOWN"},
	{`ARK\s*Survival\s*Evolved(?:\s*Explorer's)?`, "ARK Survival Evolved"},
	{`Assassin's\s*Creed\s*Chronicles(?:\s*[-–]\s*Trilogy)?`, "Assassin's Creed Chronicles"},
	{`Assassin’s\s*CreedIV\s*Black\s*Flag`, "Assassin’s Creed IV Black Flag"},
	{`Assassin's\s*Creed\s*(?:IV|4)\s*Black\s*Flag`, "Assassin's Creed IV Black Flag"},
	{`Batman(?:\s*[:\s])?\s*Arkham\s*Knight(?:\s*\d*)?`, "Batman Arkham Knight"},
	{`Batman(?:\s*[:\s])?\s*Arkham\s*VR`, "Batman Arkham VR"},
	{`Batman(?:\s*[:\s])?\s*Return\s*to\s*Arkham(?:\s*Arkham\s*(?:Asylum|City))?`, "Batman Return to Arkham"},
	{`Battlefield\s*(?:4|IV)(?:\s*full\s*game)?`, "Battlefield 4"},
	{`Battlefield\s*V`, "Battlefield V"},
	{`Beyond(?:\s*[:\s])?\s*Two\s*Souls`, "Beyond Two Souls"},
	{`Bloodborne(?:\s*(?:Game of the Year|The Old Hunters))?`, "Bloodborne"},
	{`Call\s*of\s*Duty(?:\s*[:\s])?\s*Black\s*Ops\s*(?:III|3)(?:\s*Zombies\s*Chronicles)?`, "Call of Duty Black Ops III"},
	{`Crash\s*Bandicoot\s*4(?:\s*[:\s])?\s*It's\s*About\s*Time`, "Crash Bandicoot 4"},
	{`Crash\s*Team\s*Racing\s*Nitro-Fueled(?:\s*Nitros\s*Oxide)?`, "Crash Team Racing Nitro-Fueled"},
	{`Crysis\s*(?:2|3|II|III)?(?:\s*Remastered)?`, "Crysis"},
	{`Batman\s*ARKHAM`, "Batman Arkham"},
	{`DAYS\s*GONE`, "Days Gone"},
	{`DIRT\s*5`, "DIRT5"},
	{`Dragon\s*Ball\s*XENOVERSE`, "Dragon Ball Xenoverse"},
	{`ELDEN\s*RING`, "Elden Ring"},
	{`LEGO\s*CITY\s*UNDERCOVER`, "LEGO CITY Undercover"},
	{`FIFA\s*21\s*Champions`, "FIFA 21"},
	{`FOR\s*HONOR`, "For Honor"},
	{`Ghost\s*of\s*Tsushima\s*Legends`, "Ghost of Tsushima"},
	{`Goat\s*Simulator\s*GOATY`, "Goat Simulator"},
	{`eFootball\s*PES\s*2021\s*SEASON\s*UPDATE`, "PES 2021"},
	{`EA\s*SPORTS\s*FIFA\s*17`, "FIFA 17"},
	{`EA\s*SPORTS\s*FIFA\s*23`, "FIFA 23"},
	{`EA\s*SPORTS\s*FIFA\s*20`, "FIFA 20"},
	{`EA\s*SPORTS\s*FIFA\s*16`, "FIFA 16"},
	{`Call\s*of\s*Duty\s*Modern\s*Warfare\s*(?:III|3)`, "Call of Duty Modern Warfare III"},
	{`Call\s*of\s*Duty\s*Modern\s*Warfare\s*(?:II|2)`, "Call of Duty Modern Warfare II"},
	{`Call\s*of\s*Duty\s*Modern\s*Warfare`, "Call of Duty Modern Warfare"},
	{`Assassin’s\s*Creed\s*Odyssey\s*GOLD`, "Assassin's Creed Odyssey"},
	{`Assassin’s\s*Creed\s*Mirage\s*Master\s*Assassin`, "Assassin's Creed Mirage"},
	{`Call\s*of\s*Duty\s*Vanguard-bundel`, "Call of Duty Vanguard"},
	{`Crash\s*Bandicoot\s*4\s*It’s\s*About\s*Time`, "Crash Bandicoot 4"},
	{`DARK\s*SOULS\s*Ⅲ\s*FIRE\s*FADES`, "DARK SOULS III"},
	{`Demon\s*Slayer\s*-Kimetsu\s*no\s*Yaiba\s*Hinokami\s*Chronicles`, "Demon Slayer Kimetsu no Yaiba"},
	{`Devil\s*May\s*Cry\s*5\s*\+\s*Vergil`, "Devil May Cry 5"},
	{`DiRT\s*Rally\s*2.0\s*Germany`, "DiRT Rally 2.0"},
	{`EA\s*SPORTS\s*FC\s*24\s*and`, "EA Sports FC 24"},
	{`EA\s*SPORTS\s*FIFA\s*18\s*&\s*NBA\s*LIVE\s*18`, "FIFA 18"},
	{`eFootball\s*Pro\s*Evolution\s*Soccer\s*2020`, "eFootball PES 2020"},
	{`Exps\s*A\s*MudRunner\s*Game\s*Year\s*1`, "Exps A MudRunner Game"},
	{`Fallout\s*4(?:\s*G\.O\.T\.Y\.)?`, "Fallout 4"},
	{`Far\s*Cry\s*3`, "Far Cry 3"},
	{`FAR\s*CRY\s*6\s*–?`, "FAR CRY 6"},
	{`Hogwarts(?:\s*Version)?`, "Hogwarts"},
	{`KINGDOM\s*HEARTS\s*III|KINGDOM\s*HEARTS\s*Ⅲ`, "KINGDOM HEARTS III"},
	{`God\s*of\s*War\s*III`, "God of War III Remastered"},
	{`GOD\s*OF\s*WARIII`, "God of War III Remastered"},
	{`The\s*Last\s*of\s*Us\s*Parte\s*II`, "The Last of Us Part II"},
	{`The\s*Last\s*of\s*Us\s*Parte\s*I`, "The Last of Us Part I"},
	{`LEGO\s*DC\s*Super-Vilões`, "LEGO DC Super-Villains"},
	{`LEGO\s*MARVEL's\s*Avengers`, "LEGO Marvel"},
	{`LEGO\s*Marvel’s\s*Avengers`, "LEGO Marvel"},
	{`LEGO\s*NINJAGO\s*Movie\s*Video\s*Game`, "LEGO NINJAGO Movie"},
	{`Metal\s*Gear\s*Solid\s*V\s*Experience`, "METAL GEAR SOLID V DEFINITIVE EXPERIENCE"},
	{`Mortal\s*Kombat\s*11(?:\s*\+\s*(?:Add-On|Aftermath|Kombat-2|Injustice\s*2\s*Leg\.))?`, "Mortal Kombat 11"},
	{`NieR\s*Automata\s*Game\s*of\s*the\s*YoRHa`, "NieR Automata"},
	{`Prototype2`, "Prototype 2"},
	{`SnowRunner\s*1-Year`, "SnowRunner"},
	{`SOULCALIBUR\s*Ⅵ`, "SOULCALIBUR VI"},
	{`SpongeBob\s*SquarePants\s*Battle\s*For\s*Bikini\s*Bottom\s*Rehydrated`, "SpongeBob SquarePants"},
	{`SpongeBob\s*SquarePants\s*Battle\s*For\s*Bikini\s*Bottom`, "SpongeBob SquarePants"},
	{`STEEP\s*GOLD`, "STEEP"},
	{`TOM\s*CLANCY'S\s*DIVISION`, "Tom Clancy’s Division"},
	{`Tom\s*Clancy's\s*Rainbow\s*Six(?:\s*Siege)?`, "Tom Clancy's Rainbow Six"},
	{`Uncharted\s*4\s*A\s*Thief['’]s\s*End`, "Uncharted 4 A Thief's End"},
	{`Watch\s*Dogs\s*2`, "Watch Dogs 2"},
	{`WATCH_DOGS`, "Watch Dogs"},
	{`WWE\s*2K24(?:\s*40th\s*Anniversary\s*of\s*WrestleMania)?`, "WWE 2K24"},
	{`EA\s*SPORTS\s*FC\s*25(?:\s*and.*)?`, "EA SPORTS FC 25"},
	{`Assassin’s\s*Creed\s*Chronicles\s*China`, "Assassin's Creed Chronicles"},
	{`Assassin’s\s*Creed\s*Chronicles\s*India`, "Assassin's Creed Chronicles"},
	{`Battlefield\s*1\s*&\s*Titanfall\s*2`, "Battlefield 1 e Titanfall 2"},
	{`Mass\s*Effect\s*Andromeda`, "Mass Effect"},
	{`Mass\s*Effect\s*Andromeda\s*–`, "Mass Effect"},
	{`Mortal\s*Kombat\s*X\s*\+?\s*XL`, "Mortal Kombat X"},
	{`TEKKEN7`, "TEKKEN 7"},
	{`Tom\s*Clancy’s\s*Rainbow\s*Six\s*Extraction`, "Tom Clancy's Rainbow Six"},
	{`Tom\s*Clancy’s\s*Rainbow\s*Six\s*Siege`, "Tom Clancy's Rainbow Six"},
	{`Uncharted\s*The\s*Nathan\s*Drake's`, "Uncharted The Nathan Drake"},
	{`Call\s*of\s*Duty\s*WWIIچ`, "Call of Duty WWII"},
	{`Grand\s*Theft\s*Auto\s*San\s*Andreas\s*–\s*The`, "Grand Theft Auto: San Andreas"},
	{`Grand\s*Theft\s*Auto\s*III\s*–\s*The`, "Grand Theft Auto III"},
	{`Grand\s*Theft\s*Auto\s*The`, "Grand Theft Auto"},
	{`Grand\s*Theft\s*Auto\s*Vice\s*City\s*–\s*The`, "Grand Theft Auto Vice City"},
	{`Grand\s*Theft\s*Auto\s*The\s*–\s*The`, "Grand Theft Auto Vice"},
	{`Grand\s*Theft\s*Auto\s*3`, "Grand Theft Auto III"},
	{`Nioh\s*The`, "Nioh"},
	{`Rise\s*of\s*the\s*Tomb\s*Raider`, "Rise of the Tomb Raider: 20 Year Celebration"},
	{`Ratchet\s*&\s*Clank\s*3`, "Ratchet & Clank"},
	{`Alien\s*&\s*Isolation\s*THE`, "Alien Isolation"},
}

var defaultRewrites = []RewriteRule{
	{`^-=\-=\-=\-=\-=\-=\-=\-=\-$|^=\-=\-=\-=\-=\-=\-=\-=$|^—\-\-\-\-\-\-\-\-\-\-\-\-\-\-\-\-\-—$|^—————————$`, ""},
	{`\s*GOLD EDITION`, ""},
	{`\s*Royal Edition`, ""},
	{`\s*NBA 75th Anniversary Edition`, ""},
	{`\s*Deluxe Recruit Edition`, ""},
	{`\s*Standard Recruit Edition`, ""},
	{`\s*Galactic Edition`, ""},
	{`\s*STORM 4 ROAD TO BORUTO`, ""},
	{`\s*Championship Edition`, ""},
	{`\s*Survival Evolved`, ""},
	{`\s*Ultimate Survivor Edition`, ""},
	{`\s*Survival Ascended`, ""},
	{`\s*Rescue Mission`, ""},
	{`\s*Traveler Edition`, ""},
	{`\s*GOLD Edition`, ""},
	{`\s*The Old Hunters Edition`, ""},
	{`\s*Zombies Chronicles Edition`, ""},
	{`\s*Triple Pack PS4 & PS5`, ""},
	{`\s*Curator's Cut`, ""},
	{`\s*Switchback VR`, ""},
	{`\s*Blades & Whip Edition`, ""},
	{`\s*Warmastered Edition`, ""},
	{`\s*The Fire Fades Edition`, ""},
	{`\s*REMASTERED`, ""},
	{`\s*SEASON UPDATE`, ""},
	{`\s*HD Collection`, ""},
	{`\s*HD Collection & 4SE Bundle PS4™ & PS5™`, ""},
	{`\s*Eternal Collection`, ""},
	{`\s*Reaper of Souls - Ultimate Evil Edition`, ""},
	{`\s*Resurrected`, ""},
	{`\s*- Germany (Rally Location)`, ""},
	{`\s*The Final Cut`, ""},
	{`\s*Death of the Outsider`, ""},
	{`\s*Definitive Edtion`, ""},
	{`\s*Hamlet Console Edition`, ""},
	{`\s*VR Edition`, ""},
	{`\s*Super Deluxe Edition`, ""},
	{`\s*Shadow of the Erdtree`, ""},
	{`\s*Tamriel Unlimited`, ""},
	{`\s*Skyrim Special Edition`, ""},
	{`\s*Skyrim Anniversary Edition`, ""},
	{`\s*Skyrim VR`, ""},
	{`\s*Anniversary Edition`, ""},
	{`\s*Deluxe Schumacher Edition`, ""},
	{`\s*Seventy Edition`, ""},
	{`\s*Champions PS4 et PS5 Edition`, ""},
	{`\s*Blood Dragon`, ""},
	{`\s*Blood Dragon Classic Edition`, ""},
	{`\s*Classic Edition`, ""},
	{`\+\s*FAR CRY PRIMAL`, ""},
	{`\s*Standard Edition PS4 & PS5`, ""},
	{`\s*standard PS4 & PS5`, ""},
	{`\s*New Dawn Deluxe Edition`, ""},
	{`\s*Digital Apex Edition`, ""},
	{`\s*APEX EDITION`, ""},
	{`\s*Platinum Edition PS4 & PS5`, ""},
	{`\s*ICON Edition`, ""},
	{`\s*NHL™ 19 Bundle`, ""},
	{`\s*NHL 19 Bundle`, ""},
	{`\s*The One Edition Bundle`, ""},
	{`\s*Ultimate Edition for`, ""},
	{`\s*REMAKE & REBIRTH Digital Deluxe Twin Pack`, ""},
	{`\s*REBIRTH`, ""},
	{`\s*Digital Exclusive Bundle`, ""},
	{`\s*Digital Edition deluxe`, ""},
	{`\s*25th Anniversary Digital Deluxe Edition`, ""},
	{`\s*Version: PS4`, ""},
	{`\s*Quidditch Champions PS4 & PS5`, ""},
	{`\s*Quidditch Champions`, ""},
	{`\s*Super Citizen Edition`, ""},
	{`\s*Dive Harder [R3]`, ""},
	{`\s*Super-Earth Ultimate Edition`, ""},
	{`\s*Absolution HD`, ""},
	{`\s*Blood Money HD`, ""},
	{`\s*The Heir of Hogwarts`, ""},
	{`\s*Voidheart Edition`, ""},
	{`\s*Wrong Number PS4 & PS5`, ""},
	{`\s*Showdown`, ""},
	{`\s*Showdown - Last Gust`, ""},
	{`\s*Scrat's Crazy Adventure`, ""},
	{`\s*Scrat's Nutty Adventure`, ""},
	{`\s*& SGW3 Unlimited Edition`, ""},
	{`\s*ULTIMATE EDITION`, ""},
	{`\s*Deluxe Party Edition`, ""},
	{`\s*Platinum Edition`, ""},
	{`\s*Croft Edition`, ""},
	{`\s*& Gat out of Hell`, ""},
	{`\s*20e anniversaire`, ""},
	{`\s*20 Year Celebration`, ""},
	{`\s*Gold Edition & Village Gold Edition`, ""},
	{`\s*Champions PS4`, ""},
	{`\s*A Realm Reborn`, ""},
	{`\s*Online - Complete Collector’s Edition`, ""},
	{`\s*MULTIPLAYER: COMRADES`, ""},
	{`\s*biohazard`, ""},
	{`\s*Edition Ultime`, ""},
	{`\s*Rift Apart PS5`, ""},
	{`\s*STANDARD EDITION`, ""},
	{`\s*ROYAL EDITION`, ""},
	{`\s*Persona Bundle`, ""},
	{`\s*Gourmet Edition`, ""},
	{`\s*Month 1 Edition`, ""},
	{`\s*X-Factor Edition till`, ""},
	{`\s*for PS5`, ""},
	{`\s*Palace Edition`, ""},
	{`\s*Pursuit Remastered`, ""},
	{`\s*Mamba Forever Edition Bundle`, ""},
	{`\s*for PS4`, ""},
	{`\s*Michael Jordan Edition`, ""},
	{`\s*Baller Edition`, ""},
	{`\s*Black Mamba Edition`, ""},
	{`\s*Kobe Bryant Edition`, ""},
	{`\s*Road to Boruto`, ""},
	{`\s*Iceborne`, ""},
	{`\s*Digital Deluxe Edition ---> PS5`, ""},
	{`\s*Iceborne Master Edition`, ""},
	{`\+\s*Sunbreak`, ""},
	{`\s*The Official Videogame`, ""},
	{`\s*Legion Edition`, ""},
	{`\s*Exclusive Digital Edition`, ""},
	{`\s*Superstar Edition`, ""},
	{`\s*75th Anniversary Edition`, ""},
	{`\s*Kobe Bryant`, ""},
	{`\s*‎: Legion of Dawn Edition`, ""},
	{`\s*All-Star Edition`, ""},
	{`\s*Edizione Standard`, ""},
	{`\s*Originals Edition`, ""},
	{`\s*Legends Edition`, ""},
	{`\s*Master Hunter Bundle`, ""},
	{`\s*Standard Edition`, ""},
	{`\s*Operator Edition`, ""},
	{`\s*Aftermath >>> PS5`, ""},
	{`\s*Icon Edition`, ""},
	{`\s*The Successor of the Legend`, ""},
	{`\s*Dream Maker`, ""},
	{`\s*Year 2 Gold Edition`, ""},
	{`\s*COMPLETE EDITION`, ""},
	{`\s*Ancient Air Snail Bundle`, ""},
	{`\s*Chapter 2: Retribution - Payback Edition`, ""},
	{`\s*Pro Tour Deluxe Edition`, ""},
	{`\s*Help Wanted - Bundle`, ""},
	{`\s*Sister Location`, ""},
	{`\s*Marching Fire Edition`, ""},
	{`\s*DIRECTOR'S CUT`, ""},
	{`\s*Deluxe Download Edition`, ""},
	{`\s*Legends PS4 Edition`, ""},
	{`\s*Security Breach PS4 & PS5`, ""},
	{`\s*Online Complete Edition`, ""},
	{`\s*Riptide Definitive Edition`, ""},
	{`^(.*?)\s*: Nitros Oxide Edition$`, "${1}"},
	{`^(.*?)\s*: Nitros Oxide$`, "${1}"},
	{`(?i)FIFA\s*(\d{2})`, "FIFA ${1}"},
	{`(?i)Battlefield\s*`, "Battlefield "},
	{`(?i)BATMAN`, "Batman"},
	{`(?i)ACE\s*COMBAT\s*7`, "ACE COMBAT 7"},
	{`(?i)Assassin['’]s\s*Creed`, "Assassin's Creed"},
	{`(?i)DRAGON\s*BALL`, "Dragon Ball"},
	{`(?i)\s*(Bundle|Pack|Vault|Cross-?gen|Launch|Full game|Enhanced|Special|Final Battle|Competition|Competizione|Competizioneerous|Revolution|Multi-Gen|Multi-Generation)(?:\s|$)`, ""},
	{`(?i)\s*(?:Game of the Year|Director's Cut)(?:\s+Edition)?`, ""},
	{`\s*\[.*?\]`, ""},
	{`\s*\(.*?\)`, ""},
	{`\s*\[\d+\]$`, ""},
	{`^(.*?)\s+per\s+PS\d+\s+e\s+PS\d+$`, "${1}"},
	{`^(.*?)\s+for\s+PS\d+\s+and\s+PS\d+$`, "${1}"},
	{`^(.*?)\s+–\s+PS\d+\s+and\s+PS\d+$`, "${1}"},
	{`^(.*?)\s+—\s+PS\d+\s+PS\d+$`, "${1}"},
	{`^(.*?)\s+–\s+PS\d+\s+og\s+PS\d+$`, "${1}"},
	{`^(.*?)\s+–\s+PS\d+\s+PS\d+$`, "${1}"},
	{`^(.*?)\s+pour\s+PS\d+\s+et\s+PS\d+$`, "${1}"},
	{`\bOf\b`, "of"},
	{`\s*Cross-Gen-Bundle\s*`, " "},
	{`\s*Multi-Generation Lite\s*`, " "},
	{`^(.*?):\s*(.*)$`, "${1} ${2}"},
	{`^(.*?)\s*: Competition$`, "${1}"},
	{`^(.*?)\s*: Competizione$`, "${1}"},
	{`^(.*?)\s*: + CTR Nitro-Fueled$`, "${1}"},
	{`\s*Nitros Oxide`, ""},
	{`^(.*?)\s*: Traveler Edition$`, "${1}"},
	{`^(.*?)\s*: e Titanfall 2$`, "${1}"},
	{`^(.*?)\s*: ==Revolution$`, "${1}"},
	{`^(.*?)\s*–\s*The\s+Definitive$`, "${1}"},
	{`^(.*?)\s*–\s*Legend\s+Edition$`, "${1}"},
	{`^(.*?)\s*–\s*Deluxe\s+Party\s+Edition$`, "${1}"},
	{`^(.*?)\s*–\s*Standard\s+Eition$`, "${1}"},
	{`^(.*?)\s*–\s*Standard\s+Edition$`, "${1}"},
	{`^(.*?)\s*–\s*Traveler\s+Edition$`, "${1}"},
	{`^(.*?)\s*–\s*Enhanced\s+Edition$`, "${1}"},
	{`^(.*?)\s*–\s*Console\s+Edition$`, "${1}"},
	{`^(.*?)\s*–\s*DIRECTOR’S\s+CUT$`, "${1}"},
	{`^(.*?)\s*–\s*Ultimate\s+Bundle$`, "${1}"},
	{`^(.*?)\s*–\s*Edition\s+Bundle$`, "${1}"},
	{`^(.*?)\s*–\s*Seventy\s+Edition$`, "${1}"},
	{`^(.*?)\s*–\s*Deluxe\s+Launch\s+Edition$`, "${1}"},
	{`^(.*?)\s*–\s*Game\s+of\s+the\s+Year$`, "${1}"},
	{`^(.*?)\s*–\s*Game\s+of\s+the\s+Year\s+Edition$`, "${1}"},
	{`^(.*?)\s*–\s*MVP\s+Edition$`, "${1}"},
	{`\|`, ""},
	{`\s+Stand Alone$`, ""},
	{`\s+--->$`, ""},
	{`\s*\(Standalone\)$`, ""},
	{`\s*Remake\s*`, " "},
	{`\s*\[15559\]\s*`, " "},
	{`\s*Console\s*`, " "},
	{`\s*PlayStation4\s*`, " "},
	{`\s*Remasterizado\s*`, " "},
	{`\s*Reloaded\s*`, " "},
	{`\s*Digital\s*`, " "},
	{`\s*Ultimate\s*`, " "},
	{`\s*Ultimate pour\s*`, " "},
	{`\s*Legend Edition\s*`, " "},
	{`\s*SEASON UPDATE\s*`, " "},
	{`\s*premium Edition\s*`, " "},
	{`\s*Edition premium\s*`, " "},
	{`\s*Campagne Remaster\s*`, " "},
	{`\s*Campaign Remastered\s*`, " "},
	{`\s*Estndar Edicin\s*`, " "},
	{`\s*Standardowa\s*`, " "},
	{`\bChampions Edition\b`, " "},
	{`@fullhacker2017\b`, " "},
	{`\bTOP GUN: Maverick\b`, " "},
	{`\s*1\) ToPS4Account\s*`, " "},
	{`\s*350 T\s*`, " "},
	{`\s*4\) Acc021\s*`, " "},
	{`\s*5\) Log Seller's\s*`, " "},
	{`\s*5\) PS GameShare\s*`, " "},
	{`\bVR MODE\b`, " "},
	{`\bPS4 & PS5\b`, " "},
	{`\bper\b`, " "},
	{`\bElite\b`, " "},
	{`\>>> PS5\b`, " "},
	{`\bTHE COLLECTION\b`, " "},
	{`\bCOLLECTION\b`, " "},
	{`\s*Definitive\s*`, " "},
	{`\s*Premium\s*`, " "},
	{`\s*Deluxe\s*`, " "},
	{`\s*Standart\s*`, " "},
	{`\s*Standard pour\s*`, " "},
	{`\s*Explorer's Edition\s*`, " "},
	{`\s*Eition\s*`, " "},
	{`\s*Edycja\s*`, " "},
	{`\s*Sürüm\s*`, " "},
	{`\s*Edicimn\s*`, " "},
	{`\s*Estandar\s*`, " "},
	{`\s*Standard\s*`, " "},
	{`\s*para\s*`, " "},
	{`\s*Gold\s*`, " "},
	{`\s*Legendary\s*`, " "},
	{`\s*Complete\s*`, " "},
	{`^(.*?)\s*–\s*The Definitive Edition$`, "${1}"},
	{`^(.*?)\s*–\s*The Definitive$`, "${1}"},
	{`(?i)\s+-\s+(?:Trilogy|Collection)$`, ""},
	{`(?i)\s+(?:Legacy|Next Level)$`, ""},
	{`[™®]`, ""},
	{`\s*\[R[1-3]\]`, ""},
	{`\s*\\\[R[1-3]\\\]`, ""},
	{`^(.*?)\s*\(PS\d+™?[^)]*\)$`, "${1}"},
	{`^(.*?)(\s+PS\d+.*)?$`, "${1}"},
	{`(?i)\s*>>>\s*PS[45]`, ""},
	{`(?i)\s*\\>\\>\\>`, ""},
	{`(?i)\s*\\>\\>`, ""},
	{`(?i)\s*>>`, ""},
	{`(?i)\s*PS4‎?\s*(?:[&ey]|et|og)\s*PS5™?`, ""},
	{`\s*PS[45]™?\b`, ""},
	{`^(.*?)\s*:\s*Premium Edition$`, "${1}"},
	{`^(.*?)(\s*–\s*The Definitive Edition\s*>>>.*)?$`, "${1}"},
	{`^(.*?)\s*:\s*Edition\s+Premium$`, "${1}"},
	{`(?i):\s*Game of the Year(?:\s+Edition)?`, ""},
	{`(?i)\s*(?:Digital\s+)?(?:Deluxe\s+)?Edition(?:\s+PS[45])?`, ""},
	{`(?i)\s*Version\s*PS[45]`, ""},
	{`(?i)\s*for PS4™?`, ""},
	{`®:\s*`, ": "},
	{`LEGO®`, "LEGO"},
	{`^\\`, ""},
	{`\s*vs\.\s*`, " vs "},
	{`\\`, ""},
	{`\>>>`, ""},
	{`^(.*?)\s+Version:`, "${1}"},
	{`^(.*?)\s*\(PlayStation\d+\)$`, "${1}"},
	{`\s+`, " "},
	{`^-=-=-=-=-=-=-=-=$|^=-=-=-=-=-=-=-=-=$|^—-----------------—$`, ""},
	{`\s*-Lite\s*`, " "},
	{`\s*PlayStation5\s*`, " "},
}

var defaultEditions = []string{
	"Cross-Gen",
	"Standard Edition",
	"Gold Edition",
	"Legendary Edition",
	"Complete Edition",
	"Game of the Year Edition",
	"Digital Deluxe Edition",
	"Deluxe Party Edition",
	"Deluxe Edition",
	"PS4 Edition",
	"Bundle",
	"Pack",
	"Vault",
	"Cross-gen",
	"Crossgen",
	"Launch",
	"Full game",
	"Enhanced",
	"Special",
	"Legacy",
	"Next Level",
	"Director's Cut",
	"The Collection",
	"THE COLLECTION",
	"The Complete Edition",
	"The Complete Editio",
	"Trilogy",
}
