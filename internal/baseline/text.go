package baseline

import (
	"strings"

	"github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"
)

// texts maps vanilla message strings to their language references.
var texts = []deh.Text{
	{Ref: "GotArmour", Value: "Picked up the armor."},
	{Ref: "GotMegaArmour", Value: "Picked up the MegaArmor!"},
	{Ref: "GotHealthPotion", Value: "Picked up a health bonus."},
	{Ref: "GotArmourHelmet", Value: "Picked up an armor bonus."},
	{Ref: "GotStim", Value: "Picked up a stimpack."},
	{Ref: "GotMedi", Value: "Picked up a medikit."},
	{Ref: "GotMediNeed", Value: "Picked up a medikit that you REALLY need!"},
	{Ref: "GotSoul", Value: "Supercharge!"},
	{Ref: "GotMega", Value: "MegaSphere!"},
	{Ref: "GotBlueCard", Value: "Picked up a blue keycard."},
	{Ref: "GotYellowCard", Value: "Picked up a yellow keycard."},
	{Ref: "GotRedCard", Value: "Picked up a red keycard."},
	{Ref: "GotBlueSkull", Value: "Picked up a blue skull key."},
	{Ref: "GotYellowSkull", Value: "Picked up a yellow skull key."},
	{Ref: "GotRedSkull", Value: "Picked up a red skull key."},
	{Ref: "GotInvulner", Value: "Invulnerability!"},
	{Ref: "GotBerserk", Value: "Berserk!"},
	{Ref: "GotInvis", Value: "Partial Invisibility"},
	{Ref: "GotSuit", Value: "Radiation Shielding Suit"},
	{Ref: "GotMap", Value: "Computer Area Map"},
	{Ref: "GotVisor", Value: "Light Amplification Visor"},
	{Ref: "GotClip", Value: "Picked up a clip."},
	{Ref: "GotClipBox", Value: "Picked up a box of bullets."},
	{Ref: "GotRocket", Value: "Picked up a rocket."},
	{Ref: "GotRocketBox", Value: "Picked up a box of rockets."},
	{Ref: "GotCell", Value: "Picked up an energy cell."},
	{Ref: "GotCellPack", Value: "Picked up an energy cell pack."},
	{Ref: "GotShells", Value: "Picked up 4 shotgun shells."},
	{Ref: "GotShellBox", Value: "Picked up a box of shotgun shells."},
	{Ref: "GotBackpack", Value: "Picked up a backpack full of ammo!"},
	{Ref: "GotBFG", Value: "You got the BFG9000!  Oh, yes."},
	{Ref: "GotChainGun", Value: "You got the chaingun!"},
	{Ref: "GotChainSaw", Value: "A chainsaw!  Find some meat!"},
	{Ref: "GotLauncher", Value: "You got the rocket launcher!"},
	{Ref: "GotPlasma", Value: "You got the plasma gun!"},
	{Ref: "GotShotgun", Value: "You got the shotgun!"},
	{Ref: "GotDoubleShotgun", Value: "You got the super shotgun!"},
	{Ref: "NeedBlueForDoor", Value: "You need a blue key to open this door"},
	{Ref: "NeedRedForDoor", Value: "You need a red key to open this door"},
	{Ref: "NeedYellowForDoor", Value: "You need a yellow key to open this door"},
	{Ref: "GameSaved", Value: "game saved."},
	{Ref: "Level1", Value: "level 1: entryway"},
	{Ref: "Level2", Value: "level 2: underhalls"},
}

// Texts returns a copy of the language table.
func Texts() []deh.Text {
	out := make([]deh.Text, len(texts))
	copy(out, texts)
	return out
}

// TextRef returns the language reference for a vanilla string.
func TextRef(value string) (string, bool) {
	for _, t := range texts {
		if t.Value == value {
			return t.Ref, true
		}
	}
	return "", false
}

// bexMnemonics maps [STRINGS] mnemonics to language references.
var bexMnemonics = map[string]string{
	"GOTARMOR":    "GotArmour",
	"GOTMEGA":     "GotMegaArmour",
	"GOTHTHBONUS": "GotHealthPotion",
	"GOTARMBONUS": "GotArmourHelmet",
	"GOTSTIM":     "GotStim",
	"GOTMEDIKIT":  "GotMedi",
	"GOTMEDINEED": "GotMediNeed",
	"GOTSUPER":    "GotSoul",
	"GOTMSPHERE":  "GotMega",
	"GOTBLUECARD": "GotBlueCard",
	"GOTYELWCARD": "GotYellowCard",
	"GOTREDCARD":  "GotRedCard",
	"GOTBLUESKUL": "GotBlueSkull",
	"GOTYELWSKUL": "GotYellowSkull",
	"GOTREDSKULL": "GotRedSkull",
	"GOTINVUL":    "GotInvulner",
	"GOTBERSERK":  "GotBerserk",
	"GOTINVIS":    "GotInvis",
	"GOTSUIT":     "GotSuit",
	"GOTMAP":      "GotMap",
	"GOTVISOR":    "GotVisor",
	"GOTCLIP":     "GotClip",
	"GOTCLIPBOX":  "GotClipBox",
	"GOTROCKET":   "GotRocket",
	"GOTROCKBOX":  "GotRocketBox",
	"GOTCELL":     "GotCell",
	"GOTCELLBOX":  "GotCellPack",
	"GOTSHELLS":   "GotShells",
	"GOTSHELLBOX": "GotShellBox",
	"GOTBACKPACK": "GotBackpack",
	"GOTBFG9000":  "GotBFG",
	"GOTCHAINGUN": "GotChainGun",
	"GOTCHAINSAW": "GotChainSaw",
	"GOTLAUNCHER": "GotLauncher",
	"GOTPLASMA":   "GotPlasma",
	"GOTSHOTGUN":  "GotShotgun",
	"GOTSHOTGUN2": "GotDoubleShotgun",
	"PD_BLUEO":    "NeedBlueForDoor",
	"PD_REDO":     "NeedRedForDoor",
	"PD_YELLOWO":  "NeedYellowForDoor",
	"GGSAVED":     "GameSaved",
	"HUSTR_1":     "Level1",
	"HUSTR_2":     "Level2",
}

// MnemonicRef returns the language reference for a [STRINGS] mnemonic.
func MnemonicRef(mnemonic string) (string, bool) {
	ref, ok := bexMnemonics[strings.ToUpper(mnemonic)]
	return ref, ok
}
