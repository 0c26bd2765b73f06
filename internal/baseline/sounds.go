package baseline

import "github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"

// sounds lists the vanilla sound effects in id order. Id 0 is the
// "no sound" entry.
var sounds = []deh.Sound{
	{Name: "", Priority: 0},
	{Name: "pistol", Priority: 64},
	{Name: "shotgn", Priority: 64},
	{Name: "sgcock", Priority: 64},
	{Name: "dshtgn", Priority: 64},
	{Name: "dbopn", Priority: 64},
	{Name: "dbcls", Priority: 64},
	{Name: "dbload", Priority: 64},
	{Name: "plasma", Priority: 64},
	{Name: "bfg", Priority: 64},
	{Name: "sawup", Priority: 64},
	{Name: "sawidl", Priority: 118},
	{Name: "sawful", Priority: 64},
	{Name: "sawhit", Priority: 64},
	{Name: "rlaunc", Priority: 64},
	{Name: "rxplod", Priority: 70},
	{Name: "firsht", Priority: 70},
	{Name: "firxpl", Priority: 70},
	{Name: "pstart", Priority: 100},
	{Name: "pstop", Priority: 100},
	{Name: "doropn", Priority: 100},
	{Name: "dorcls", Priority: 100},
	{Name: "stnmov", Priority: 119},
	{Name: "swtchn", Priority: 78},
	{Name: "swtchx", Priority: 78},
	{Name: "plpain", Priority: 96},
	{Name: "dmpain", Priority: 96},
	{Name: "popain", Priority: 96},
	{Name: "vipain", Priority: 96},
	{Name: "mnpain", Priority: 96},
	{Name: "pepain", Priority: 96},
	{Name: "slop", Priority: 78},
	{Name: "itemup", Priority: 78},
	{Name: "wpnup", Priority: 78},
	{Name: "oof", Priority: 96},
	{Name: "telept", Priority: 32},
	{Name: "posit1", Priority: 98},
	{Name: "posit2", Priority: 98},
	{Name: "posit3", Priority: 98},
	{Name: "bgsit1", Priority: 98},
	{Name: "bgsit2", Priority: 98},
	{Name: "sgtsit", Priority: 98},
	{Name: "cacsit", Priority: 98},
	{Name: "brssit", Priority: 94},
	{Name: "cybsit", Priority: 92},
	{Name: "spisit", Priority: 90},
	{Name: "bspsit", Priority: 90},
	{Name: "kntsit", Priority: 90},
	{Name: "vilsit", Priority: 90},
	{Name: "mansit", Priority: 90},
	{Name: "pesit", Priority: 90},
	{Name: "sklatk", Priority: 70},
	{Name: "sgtatk", Priority: 70},
	{Name: "skepch", Priority: 70},
	{Name: "vilatk", Priority: 70},
	{Name: "claw", Priority: 70},
	{Name: "skeswg", Priority: 70},
	{Name: "pldeth", Priority: 32},
	{Name: "pdiehi", Priority: 32},
	{Name: "podth1", Priority: 70},
	{Name: "podth2", Priority: 70},
	{Name: "podth3", Priority: 70},
	{Name: "bgdth1", Priority: 70},
	{Name: "bgdth2", Priority: 70},
	{Name: "sgtdth", Priority: 70},
	{Name: "cacdth", Priority: 70},
	{Name: "skldth", Priority: 70},
	{Name: "brsdth", Priority: 32},
	{Name: "cybdth", Priority: 32},
	{Name: "spidth", Priority: 32},
	{Name: "bspdth", Priority: 32},
	{Name: "vildth", Priority: 32},
	{Name: "kntdth", Priority: 32},
	{Name: "pedth", Priority: 32},
	{Name: "skedth", Priority: 32},
	{Name: "posact", Priority: 120},
	{Name: "bgact", Priority: 120},
	{Name: "dmact", Priority: 120},
	{Name: "bspact", Priority: 100},
	{Name: "bspwlk", Priority: 100},
	{Name: "vilact", Priority: 100},
	{Name: "noway", Priority: 78},
	{Name: "barexp", Priority: 60},
	{Name: "punch", Priority: 64},
	{Name: "hoof", Priority: 70},
	{Name: "metal", Priority: 70},
	{Name: "chgun", Priority: 64},
	{Name: "tink", Priority: 60},
	{Name: "bdopn", Priority: 100},
	{Name: "bdcls", Priority: 100},
	{Name: "itmbk", Priority: 100},
	{Name: "flame", Priority: 32},
	{Name: "flamst", Priority: 32},
	{Name: "getpow", Priority: 60},
	{Name: "bospit", Priority: 70},
	{Name: "boscub", Priority: 70},
	{Name: "bossit", Priority: 70},
	{Name: "bospn", Priority: 70},
	{Name: "bosdth", Priority: 70},
	{Name: "manatk", Priority: 70},
	{Name: "mandth", Priority: 70},
	{Name: "sssit", Priority: 70},
	{Name: "ssdth", Priority: 70},
	{Name: "keenpn", Priority: 70},
	{Name: "keendt", Priority: 70},
	{Name: "skeact", Priority: 70},
	{Name: "skesit", Priority: 70},
	{Name: "skeatk", Priority: 70},
	{Name: "radio", Priority: 60},
}
