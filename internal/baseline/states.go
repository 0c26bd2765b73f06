package baseline

import "github.com/edge-classic/EDGE-classic-sub008/internal/entities/deh"

const fb = deh.FrameBright

// stateDefs is the vanilla frame table in id order. Next frames are labels
// resolved at init.
var stateDefs = []stateDef{
	{"NULL", "TROO", 0, -1, "", "NULL"},
	{"LIGHTDONE", "SHTG", 4, 0, "A_Light0", "NULL"},
	{"PUNCH", "PUNG", 0, 1, "A_WeaponReady", "PUNCH"},
	{"PUNCHDOWN", "PUNG", 0, 1, "A_Lower", "PUNCHDOWN"},
	{"PUNCHUP", "PUNG", 0, 1, "A_Raise", "PUNCHUP"},
	{"PUNCH1", "PUNG", 1, 4, "", "PUNCH2"},
	{"PUNCH2", "PUNG", 2, 4, "A_Punch", "PUNCH3"},
	{"PUNCH3", "PUNG", 3, 5, "", "PUNCH4"},
	{"PUNCH4", "PUNG", 2, 4, "", "PUNCH5"},
	{"PUNCH5", "PUNG", 1, 5, "A_ReFire", "PUNCH"},
	{"PISTOL", "PISG", 0, 1, "A_WeaponReady", "PISTOL"},
	{"PISTOLDOWN", "PISG", 0, 1, "A_Lower", "PISTOLDOWN"},
	{"PISTOLUP", "PISG", 0, 1, "A_Raise", "PISTOLUP"},
	{"PISTOL1", "PISG", 0, 4, "", "PISTOL2"},
	{"PISTOL2", "PISG", 1, 6, "A_FirePistol", "PISTOL3"},
	{"PISTOL3", "PISG", 2, 4, "", "PISTOL4"},
	{"PISTOL4", "PISG", 1, 5, "A_ReFire", "PISTOL"},
	{"PISTOLFLASH", "PISF", fb | 0, 7, "A_Light1", "LIGHTDONE"},
	{"SGUN", "SHTG", 0, 1, "A_WeaponReady", "SGUN"},
	{"SGUNDOWN", "SHTG", 0, 1, "A_Lower", "SGUNDOWN"},
	{"SGUNUP", "SHTG", 0, 1, "A_Raise", "SGUNUP"},
	{"SGUN1", "SHTG", 0, 3, "", "SGUN2"},
	{"SGUN2", "SHTG", 0, 7, "A_FireShotgun", "SGUN3"},
	{"SGUN3", "SHTG", 1, 5, "", "SGUN4"},
	{"SGUN4", "SHTG", 2, 5, "", "SGUN5"},
	{"SGUN5", "SHTG", 3, 4, "", "SGUN6"},
	{"SGUN6", "SHTG", 2, 5, "", "SGUN7"},
	{"SGUN7", "SHTG", 1, 5, "", "SGUN8"},
	{"SGUN8", "SHTG", 0, 3, "", "SGUN9"},
	{"SGUN9", "SHTG", 0, 7, "A_ReFire", "SGUN"},
	{"SGUNFLASH1", "SHTF", fb | 0, 4, "A_Light1", "SGUNFLASH2"},
	{"SGUNFLASH2", "SHTF", fb | 1, 3, "A_Light2", "LIGHTDONE"},
	{"DSGUN", "SHT2", 0, 1, "A_WeaponReady", "DSGUN"},
	{"DSGUNDOWN", "SHT2", 0, 1, "A_Lower", "DSGUNDOWN"},
	{"DSGUNUP", "SHT2", 0, 1, "A_Raise", "DSGUNUP"},
	{"DSGUN1", "SHT2", 0, 3, "", "DSGUN2"},
	{"DSGUN2", "SHT2", 0, 7, "A_FireShotgun2", "DSGUN3"},
	{"DSGUN3", "SHT2", 1, 7, "", "DSGUN4"},
	{"DSGUN4", "SHT2", 2, 7, "A_CheckReload", "DSGUN5"},
	{"DSGUN5", "SHT2", 3, 7, "A_OpenShotgun2", "DSGUN6"},
	{"DSGUN6", "SHT2", 4, 7, "", "DSGUN7"},
	{"DSGUN7", "SHT2", 5, 7, "A_LoadShotgun2", "DSGUN8"},
	{"DSGUN8", "SHT2", 6, 6, "", "DSGUN9"},
	{"DSGUN9", "SHT2", 7, 6, "A_CloseShotgun2", "DSGUN10"},
	{"DSGUN10", "SHT2", 0, 5, "A_ReFire", "DSGUN"},
	{"DSNR1", "SHT2", 1, 7, "", "DSNR2"},
	{"DSNR2", "SHT2", 0, 3, "", "DSGUNDOWN"},
	{"DSGUNFLASH1", "SHT2", fb | 8, 5, "A_Light1", "DSGUNFLASH2"},
	{"DSGUNFLASH2", "SHT2", fb | 9, 4, "A_Light2", "LIGHTDONE"},
	{"CHAIN", "CHGG", 0, 1, "A_WeaponReady", "CHAIN"},
	{"CHAINDOWN", "CHGG", 0, 1, "A_Lower", "CHAINDOWN"},
	{"CHAINUP", "CHGG", 0, 1, "A_Raise", "CHAINUP"},
	{"CHAIN1", "CHGG", 0, 4, "A_FireCGun", "CHAIN2"},
	{"CHAIN2", "CHGG", 1, 4, "A_FireCGun", "CHAIN3"},
	{"CHAIN3", "CHGG", 1, 0, "A_ReFire", "CHAIN"},
	{"CHAINFLASH1", "CHGF", fb | 0, 5, "A_Light1", "LIGHTDONE"},
	{"CHAINFLASH2", "CHGF", fb | 1, 5, "A_Light2", "LIGHTDONE"},
	{"MISSILE", "MISG", 0, 1, "A_WeaponReady", "MISSILE"},
	{"MISSILEDOWN", "MISG", 0, 1, "A_Lower", "MISSILEDOWN"},
	{"MISSILEUP", "MISG", 0, 1, "A_Raise", "MISSILEUP"},
	{"MISSILE1", "MISG", 1, 8, "A_GunFlash", "MISSILE2"},
	{"MISSILE2", "MISG", 1, 12, "A_FireMissile", "MISSILE3"},
	{"MISSILE3", "MISG", 1, 0, "A_ReFire", "MISSILE"},
	{"MISSILEFLASH1", "MISF", fb | 0, 3, "A_Light1", "MISSILEFLASH2"},
	{"MISSILEFLASH2", "MISF", fb | 1, 4, "", "MISSILEFLASH3"},
	{"MISSILEFLASH3", "MISF", fb | 2, 4, "A_Light2", "MISSILEFLASH4"},
	{"MISSILEFLASH4", "MISF", fb | 3, 4, "A_Light2", "LIGHTDONE"},
	{"SAW", "SAWG", 2, 4, "A_WeaponReady", "SAWB"},
	{"SAWB", "SAWG", 3, 4, "A_WeaponReady", "SAW"},
	{"SAWDOWN", "SAWG", 2, 1, "A_Lower", "SAWDOWN"},
	{"SAWUP", "SAWG", 2, 1, "A_Raise", "SAWUP"},
	{"SAW1", "SAWG", 0, 4, "A_Saw", "SAW2"},
	{"SAW2", "SAWG", 1, 4, "A_Saw", "SAW3"},
	{"SAW3", "SAWG", 1, 0, "A_ReFire", "SAW"},
	{"PLASMA", "PLSG", 0, 1, "A_WeaponReady", "PLASMA"},
	{"PLASMADOWN", "PLSG", 0, 1, "A_Lower", "PLASMADOWN"},
	{"PLASMAUP", "PLSG", 0, 1, "A_Raise", "PLASMAUP"},
	{"PLASMA1", "PLSG", 0, 3, "A_FirePlasma", "PLASMA2"},
	{"PLASMA2", "PLSG", 1, 20, "A_ReFire", "PLASMA"},
	{"PLASMAFLASH1", "PLSF", fb | 0, 4, "A_Light1", "LIGHTDONE"},
	{"PLASMAFLASH2", "PLSF", fb | 1, 4, "A_Light1", "LIGHTDONE"},
	{"BFG", "BFGG", 0, 1, "A_WeaponReady", "BFG"},
	{"BFGDOWN", "BFGG", 0, 1, "A_Lower", "BFGDOWN"},
	{"BFGUP", "BFGG", 0, 1, "A_Raise", "BFGUP"},
	{"BFG1", "BFGG", 0, 20, "A_BFGsound", "BFG2"},
	{"BFG2", "BFGG", 1, 10, "A_GunFlash", "BFG3"},
	{"BFG3", "BFGG", 1, 10, "A_FireBFG", "BFG4"},
	{"BFG4", "BFGG", 1, 20, "A_ReFire", "BFG"},
	{"BFGFLASH1", "BFGF", fb | 0, 11, "A_Light1", "BFGFLASH2"},
	{"BFGFLASH2", "BFGF", fb | 1, 6, "A_Light2", "LIGHTDONE"},
	{"BLOOD1", "BLUD", 2, 8, "", "BLOOD2"},
	{"BLOOD2", "BLUD", 1, 8, "", "BLOOD3"},
	{"BLOOD3", "BLUD", 0, 8, "", "NULL"},
	{"PUFF1", "PUFF", fb | 0, 4, "", "PUFF2"},
	{"PUFF2", "PUFF", 1, 4, "", "PUFF3"},
	{"PUFF3", "PUFF", 2, 4, "", "PUFF4"},
	{"PUFF4", "PUFF", 3, 4, "", "NULL"},
	{"TBALL1", "BAL1", fb | 0, 4, "", "TBALL2"},
	{"TBALL2", "BAL1", fb | 1, 4, "", "TBALL1"},
	{"TBALLX1", "BAL1", fb | 2, 6, "", "TBALLX2"},
	{"TBALLX2", "BAL1", fb | 3, 6, "", "TBALLX3"},
	{"TBALLX3", "BAL1", fb | 4, 6, "", "NULL"},
	{"RBALL1", "BAL2", fb | 0, 4, "", "RBALL2"},
	{"RBALL2", "BAL2", fb | 1, 4, "", "RBALL1"},
	{"RBALLX1", "BAL2", fb | 2, 6, "", "RBALLX2"},
	{"RBALLX2", "BAL2", fb | 3, 6, "", "RBALLX3"},
	{"RBALLX3", "BAL2", fb | 4, 6, "", "NULL"},
	{"PLASBALL", "PLSS", fb | 0, 6, "", "PLASBALL2"},
	{"PLASBALL2", "PLSS", fb | 1, 6, "", "PLASBALL"},
	{"PLASEXP", "PLSE", fb | 0, 4, "", "PLASEXP2"},
	{"PLASEXP2", "PLSE", fb | 1, 4, "", "PLASEXP3"},
	{"PLASEXP3", "PLSE", fb | 2, 4, "", "PLASEXP4"},
	{"PLASEXP4", "PLSE", fb | 3, 4, "", "PLASEXP5"},
	{"PLASEXP5", "PLSE", fb | 4, 4, "", "NULL"},
	{"ROCKET", "MISL", fb | 0, 1, "", "ROCKET"},
	{"BFGSHOT", "BFS1", fb | 0, 4, "", "BFGSHOT2"},
	{"BFGSHOT2", "BFS1", fb | 1, 4, "", "BFGSHOT"},
	{"BFGLAND", "BFE1", fb | 0, 8, "", "BFGLAND2"},
	{"BFGLAND2", "BFE1", fb | 1, 8, "", "BFGLAND3"},
	{"BFGLAND3", "BFE1", fb | 2, 8, "A_BFGSpray", "BFGLAND4"},
	{"BFGLAND4", "BFE1", fb | 3, 8, "", "BFGLAND5"},
	{"BFGLAND5", "BFE1", fb | 4, 8, "", "BFGLAND6"},
	{"BFGLAND6", "BFE1", fb | 5, 8, "", "NULL"},
	{"BFGEXP", "BFE2", fb | 0, 8, "", "BFGEXP2"},
	{"BFGEXP2", "BFE2", fb | 1, 8, "", "BFGEXP3"},
	{"BFGEXP3", "BFE2", fb | 2, 8, "", "BFGEXP4"},
	{"BFGEXP4", "BFE2", fb | 3, 8, "", "NULL"},
	{"EXPLODE1", "MISL", fb | 1, 8, "A_Explode", "EXPLODE2"},
	{"EXPLODE2", "MISL", fb | 2, 6, "", "EXPLODE3"},
	{"EXPLODE3", "MISL", fb | 3, 4, "", "NULL"},
	{"TFOG", "TFOG", fb | 0, 6, "", "TFOG01"},
	{"TFOG01", "TFOG", fb | 1, 6, "", "TFOG02"},
	{"TFOG02", "TFOG", fb | 0, 6, "", "TFOG2"},
	{"TFOG2", "TFOG", fb | 1, 6, "", "TFOG3"},
	{"TFOG3", "TFOG", fb | 2, 6, "", "TFOG4"},
	{"TFOG4", "TFOG", fb | 3, 6, "", "TFOG5"},
	{"TFOG5", "TFOG", fb | 4, 6, "", "TFOG6"},
	{"TFOG6", "TFOG", fb | 5, 6, "", "TFOG7"},
	{"TFOG7", "TFOG", fb | 6, 6, "", "TFOG8"},
	{"TFOG8", "TFOG", fb | 7, 6, "", "TFOG9"},
	{"TFOG9", "TFOG", fb | 8, 6, "", "TFOG10"},
	{"TFOG10", "TFOG", fb | 9, 6, "", "NULL"},
	{"IFOG", "IFOG", fb | 0, 6, "", "IFOG01"},
	{"IFOG01", "IFOG", fb | 1, 6, "", "IFOG02"},
	{"IFOG02", "IFOG", fb | 0, 6, "", "IFOG2"},
	{"IFOG2", "IFOG", fb | 1, 6, "", "IFOG3"},
	{"IFOG3", "IFOG", fb | 2, 6, "", "IFOG4"},
	{"IFOG4", "IFOG", fb | 3, 6, "", "IFOG5"},
	{"IFOG5", "IFOG", fb | 4, 6, "", "NULL"},
	{"PLAY", "PLAY", 0, -1, "", "NULL"},
	{"PLAY_RUN1", "PLAY", 0, 4, "", "PLAY_RUN2"},
	{"PLAY_RUN2", "PLAY", 1, 4, "", "PLAY_RUN3"},
	{"PLAY_RUN3", "PLAY", 2, 4, "", "PLAY_RUN4"},
	{"PLAY_RUN4", "PLAY", 3, 4, "", "PLAY_RUN1"},
	{"PLAY_ATK1", "PLAY", 4, 12, "", "PLAY"},
	{"PLAY_ATK2", "PLAY", fb | 5, 6, "", "PLAY_ATK1"},
	{"PLAY_PAIN", "PLAY", 6, 4, "", "PLAY_PAIN2"},
	{"PLAY_PAIN2", "PLAY", 6, 4, "A_Pain", "PLAY"},
	{"PLAY_DIE1", "PLAY", 7, 10, "", "PLAY_DIE2"},
	{"PLAY_DIE2", "PLAY", 8, 10, "A_PlayerScream", "PLAY_DIE3"},
	{"PLAY_DIE3", "PLAY", 9, 10, "A_Fall", "PLAY_DIE4"},
	{"PLAY_DIE4", "PLAY", 10, 10, "", "PLAY_DIE5"},
	{"PLAY_DIE5", "PLAY", 11, 10, "", "PLAY_DIE6"},
	{"PLAY_DIE6", "PLAY", 12, 10, "", "PLAY_DIE7"},
	{"PLAY_DIE7", "PLAY", 13, -1, "", "NULL"},
	{"PLAY_XDIE1", "PLAY", 14, 5, "", "PLAY_XDIE2"},
	{"PLAY_XDIE2", "PLAY", 15, 5, "A_XScream", "PLAY_XDIE3"},
	{"PLAY_XDIE3", "PLAY", 16, 5, "A_Fall", "PLAY_XDIE4"},
	{"PLAY_XDIE4", "PLAY", 17, 5, "", "PLAY_XDIE5"},
	{"PLAY_XDIE5", "PLAY", 18, 5, "", "PLAY_XDIE6"},
	{"PLAY_XDIE6", "PLAY", 19, 5, "", "PLAY_XDIE7"},
	{"PLAY_XDIE7", "PLAY", 20, 5, "", "PLAY_XDIE8"},
	{"PLAY_XDIE8", "PLAY", 21, 5, "", "PLAY_XDIE9"},
	{"PLAY_XDIE9", "PLAY", 22, -1, "", "NULL"},
	{"POSS_STND", "POSS", 0, 10, "A_Look", "POSS_STND2"},
	{"POSS_STND2", "POSS", 1, 10, "A_Look", "POSS_STND"},
	{"POSS_RUN1", "POSS", 0, 4, "A_Chase", "POSS_RUN2"},
	{"POSS_RUN2", "POSS", 0, 4, "A_Chase", "POSS_RUN3"},
	{"POSS_RUN3", "POSS", 1, 4, "A_Chase", "POSS_RUN4"},
	{"POSS_RUN4", "POSS", 1, 4, "A_Chase", "POSS_RUN5"},
	{"POSS_RUN5", "POSS", 2, 4, "A_Chase", "POSS_RUN6"},
	{"POSS_RUN6", "POSS", 2, 4, "A_Chase", "POSS_RUN7"},
	{"POSS_RUN7", "POSS", 3, 4, "A_Chase", "POSS_RUN8"},
	{"POSS_RUN8", "POSS", 3, 4, "A_Chase", "POSS_RUN1"},
	{"POSS_ATK1", "POSS", 4, 10, "A_FaceTarget", "POSS_ATK2"},
	{"POSS_ATK2", "POSS", 5, 8, "A_PosAttack", "POSS_ATK3"},
	{"POSS_ATK3", "POSS", 4, 8, "", "POSS_RUN1"},
	{"POSS_PAIN", "POSS", 6, 3, "", "POSS_PAIN2"},
	{"POSS_PAIN2", "POSS", 6, 3, "A_Pain", "POSS_RUN1"},
	{"POSS_DIE1", "POSS", 7, 5, "", "POSS_DIE2"},
	{"POSS_DIE2", "POSS", 8, 5, "A_Scream", "POSS_DIE3"},
	{"POSS_DIE3", "POSS", 9, 5, "A_Fall", "POSS_DIE4"},
	{"POSS_DIE4", "POSS", 10, 5, "", "POSS_DIE5"},
	{"POSS_DIE5", "POSS", 11, -1, "", "NULL"},
	{"POSS_XDIE1", "POSS", 12, 5, "", "POSS_XDIE2"},
	{"POSS_XDIE2", "POSS", 13, 5, "A_XScream", "POSS_XDIE3"},
	{"POSS_XDIE3", "POSS", 14, 5, "A_Fall", "POSS_XDIE4"},
	{"POSS_XDIE4", "POSS", 15, 5, "", "POSS_XDIE5"},
	{"POSS_XDIE5", "POSS", 16, 5, "", "POSS_XDIE6"},
	{"POSS_XDIE6", "POSS", 17, 5, "", "POSS_XDIE7"},
	{"POSS_XDIE7", "POSS", 18, 5, "", "POSS_XDIE8"},
	{"POSS_XDIE8", "POSS", 19, 5, "", "POSS_XDIE9"},
	{"POSS_XDIE9", "POSS", 20, -1, "", "NULL"},
	{"POSS_RAISE1", "POSS", 10, 5, "", "POSS_RAISE2"},
	{"POSS_RAISE2", "POSS", 9, 5, "", "POSS_RAISE3"},
	{"POSS_RAISE3", "POSS", 8, 5, "", "POSS_RAISE4"},
	{"POSS_RAISE4", "POSS", 7, 5, "", "POSS_RUN1"},
	{"SPOS_STND", "SPOS", 0, 10, "A_Look", "SPOS_STND2"},
	{"SPOS_STND2", "SPOS", 1, 10, "A_Look", "SPOS_STND"},
	{"SPOS_RUN1", "SPOS", 0, 3, "A_Chase", "SPOS_RUN2"},
	{"SPOS_RUN2", "SPOS", 0, 3, "A_Chase", "SPOS_RUN3"},
	{"SPOS_RUN3", "SPOS", 1, 3, "A_Chase", "SPOS_RUN4"},
	{"SPOS_RUN4", "SPOS", 1, 3, "A_Chase", "SPOS_RUN5"},
	{"SPOS_RUN5", "SPOS", 2, 3, "A_Chase", "SPOS_RUN6"},
	{"SPOS_RUN6", "SPOS", 2, 3, "A_Chase", "SPOS_RUN7"},
	{"SPOS_RUN7", "SPOS", 3, 3, "A_Chase", "SPOS_RUN8"},
	{"SPOS_RUN8", "SPOS", 3, 3, "A_Chase", "SPOS_RUN1"},
	{"SPOS_ATK1", "SPOS", 4, 10, "A_FaceTarget", "SPOS_ATK2"},
	{"SPOS_ATK2", "SPOS", fb | 5, 10, "A_SPosAttack", "SPOS_ATK3"},
	{"SPOS_ATK3", "SPOS", 4, 10, "", "SPOS_RUN1"},
	{"SPOS_PAIN", "SPOS", 6, 3, "", "SPOS_PAIN2"},
	{"SPOS_PAIN2", "SPOS", 6, 3, "A_Pain", "SPOS_RUN1"},
	{"SPOS_DIE1", "SPOS", 7, 5, "", "SPOS_DIE2"},
	{"SPOS_DIE2", "SPOS", 8, 5, "A_Scream", "SPOS_DIE3"},
	{"SPOS_DIE3", "SPOS", 9, 5, "A_Fall", "SPOS_DIE4"},
	{"SPOS_DIE4", "SPOS", 10, 5, "", "SPOS_DIE5"},
	{"SPOS_DIE5", "SPOS", 11, -1, "", "NULL"},
	{"SPOS_XDIE1", "SPOS", 12, 5, "", "SPOS_XDIE2"},
	{"SPOS_XDIE2", "SPOS", 13, 5, "A_XScream", "SPOS_XDIE3"},
	{"SPOS_XDIE3", "SPOS", 14, 5, "A_Fall", "SPOS_XDIE4"},
	{"SPOS_XDIE4", "SPOS", 15, 5, "", "SPOS_XDIE5"},
	{"SPOS_XDIE5", "SPOS", 16, 5, "", "SPOS_XDIE6"},
	{"SPOS_XDIE6", "SPOS", 17, 5, "", "SPOS_XDIE7"},
	{"SPOS_XDIE7", "SPOS", 18, 5, "", "SPOS_XDIE8"},
	{"SPOS_XDIE8", "SPOS", 19, 5, "", "SPOS_XDIE9"},
	{"SPOS_XDIE9", "SPOS", 20, -1, "", "NULL"},
	{"SPOS_RAISE1", "SPOS", 11, 5, "", "SPOS_RAISE2"},
	{"SPOS_RAISE2", "SPOS", 10, 5, "", "SPOS_RAISE3"},
	{"SPOS_RAISE3", "SPOS", 9, 5, "", "SPOS_RAISE4"},
	{"SPOS_RAISE4", "SPOS", 8, 5, "", "SPOS_RAISE5"},
	{"SPOS_RAISE5", "SPOS", 7, 5, "", "SPOS_RUN1"},
	{"VILE_STND", "VILE", 0, 10, "A_Look", "VILE_STND2"},
	{"VILE_STND2", "VILE", 1, 10, "A_Look", "VILE_STND"},
	{"VILE_RUN1", "VILE", 0, 2, "A_VileChase", "VILE_RUN2"},
	{"VILE_RUN2", "VILE", 0, 2, "A_VileChase", "VILE_RUN3"},
	{"VILE_RUN3", "VILE", 1, 2, "A_VileChase", "VILE_RUN4"},
	{"VILE_RUN4", "VILE", 1, 2, "A_VileChase", "VILE_RUN5"},
	{"VILE_RUN5", "VILE", 2, 2, "A_VileChase", "VILE_RUN6"},
	{"VILE_RUN6", "VILE", 2, 2, "A_VileChase", "VILE_RUN7"},
	{"VILE_RUN7", "VILE", 3, 2, "A_VileChase", "VILE_RUN8"},
	{"VILE_RUN8", "VILE", 3, 2, "A_VileChase", "VILE_RUN9"},
	{"VILE_RUN9", "VILE", 4, 2, "A_VileChase", "VILE_RUN10"},
	{"VILE_RUN10", "VILE", 4, 2, "A_VileChase", "VILE_RUN11"},
	{"VILE_RUN11", "VILE", 5, 2, "A_VileChase", "VILE_RUN12"},
	{"VILE_RUN12", "VILE", 5, 2, "A_VileChase", "VILE_RUN1"},
	{"VILE_ATK1", "VILE", fb | 6, 0, "A_VileStart", "VILE_ATK2"},
	{"VILE_ATK2", "VILE", fb | 6, 10, "A_FaceTarget", "VILE_ATK3"},
	{"VILE_ATK3", "VILE", fb | 7, 8, "A_VileTarget", "VILE_ATK4"},
	{"VILE_ATK4", "VILE", fb | 8, 8, "A_FaceTarget", "VILE_ATK5"},
	{"VILE_ATK5", "VILE", fb | 9, 8, "A_FaceTarget", "VILE_ATK6"},
	{"VILE_ATK6", "VILE", fb | 10, 8, "A_FaceTarget", "VILE_ATK7"},
	{"VILE_ATK7", "VILE", fb | 11, 8, "A_FaceTarget", "VILE_ATK8"},
	{"VILE_ATK8", "VILE", fb | 12, 8, "A_FaceTarget", "VILE_ATK9"},
	{"VILE_ATK9", "VILE", fb | 13, 8, "A_FaceTarget", "VILE_ATK10"},
	{"VILE_ATK10", "VILE", fb | 14, 8, "A_VileAttack", "VILE_ATK11"},
	{"VILE_ATK11", "VILE", fb | 15, 20, "", "VILE_RUN1"},
	{"VILE_HEAL1", "VILE", fb | 26, 10, "", "VILE_HEAL2"},
	{"VILE_HEAL2", "VILE", fb | 27, 10, "", "VILE_HEAL3"},
	{"VILE_HEAL3", "VILE", fb | 28, 10, "", "VILE_RUN1"},
	{"VILE_PAIN", "VILE", 16, 5, "", "VILE_PAIN2"},
	{"VILE_PAIN2", "VILE", 16, 5, "A_Pain", "VILE_RUN1"},
	{"VILE_DIE1", "VILE", 16, 7, "", "VILE_DIE2"},
	{"VILE_DIE2", "VILE", 17, 7, "A_Scream", "VILE_DIE3"},
	{"VILE_DIE3", "VILE", 18, 7, "A_Fall", "VILE_DIE4"},
	{"VILE_DIE4", "VILE", 19, 7, "", "VILE_DIE5"},
	{"VILE_DIE5", "VILE", 20, 7, "", "VILE_DIE6"},
	{"VILE_DIE6", "VILE", 21, 7, "", "VILE_DIE7"},
	{"VILE_DIE7", "VILE", 22, 7, "", "VILE_DIE8"},
	{"VILE_DIE8", "VILE", 23, 5, "", "VILE_DIE9"},
	{"VILE_DIE9", "VILE", 24, 5, "", "VILE_DIE10"},
	{"VILE_DIE10", "VILE", 25, -1, "", "NULL"},
	{"FIRE1", "FIRE", fb | 0, 2, "A_StartFire", "FIRE2"},
	{"FIRE2", "FIRE", fb | 1, 2, "A_Fire", "FIRE3"},
	{"FIRE3", "FIRE", fb | 0, 2, "A_Fire", "FIRE4"},
	{"FIRE4", "FIRE", fb | 1, 2, "A_Fire", "FIRE5"},
	{"FIRE5", "FIRE", fb | 2, 2, "A_FireCrackle", "FIRE6"},
	{"FIRE6", "FIRE", fb | 1, 2, "A_Fire", "FIRE7"},
	{"FIRE7", "FIRE", fb | 2, 2, "A_Fire", "FIRE8"},
	{"FIRE8", "FIRE", fb | 1, 2, "A_Fire", "FIRE9"},
	{"FIRE9", "FIRE", fb | 2, 2, "A_Fire", "FIRE10"},
	{"FIRE10", "FIRE", fb | 3, 2, "A_Fire", "FIRE11"},
	{"FIRE11", "FIRE", fb | 2, 2, "A_Fire", "FIRE12"},
	{"FIRE12", "FIRE", fb | 3, 2, "A_Fire", "FIRE13"},
	{"FIRE13", "FIRE", fb | 2, 2, "A_Fire", "FIRE14"},
	{"FIRE14", "FIRE", fb | 3, 2, "A_Fire", "FIRE15"},
	{"FIRE15", "FIRE", fb | 4, 2, "A_Fire", "FIRE16"},
	{"FIRE16", "FIRE", fb | 3, 2, "A_Fire", "FIRE17"},
	{"FIRE17", "FIRE", fb | 4, 2, "A_Fire", "FIRE18"},
	{"FIRE18", "FIRE", fb | 3, 2, "A_Fire", "FIRE19"},
	{"FIRE19", "FIRE", fb | 4, 2, "A_FireCrackle", "FIRE20"},
	{"FIRE20", "FIRE", fb | 5, 2, "A_Fire", "FIRE21"},
	{"FIRE21", "FIRE", fb | 4, 2, "A_Fire", "FIRE22"},
	{"FIRE22", "FIRE", fb | 5, 2, "A_Fire", "FIRE23"},
	{"FIRE23", "FIRE", fb | 4, 2, "A_Fire", "FIRE24"},
	{"FIRE24", "FIRE", fb | 5, 2, "A_Fire", "FIRE25"},
	{"FIRE25", "FIRE", fb | 6, 2, "A_Fire", "FIRE26"},
	{"FIRE26", "FIRE", fb | 7, 2, "A_Fire", "FIRE27"},
	{"FIRE27", "FIRE", fb | 6, 2, "A_Fire", "FIRE28"},
	{"FIRE28", "FIRE", fb | 7, 2, "A_Fire", "FIRE29"},
	{"FIRE29", "FIRE", fb | 6, 2, "A_Fire", "FIRE30"},
	{"FIRE30", "FIRE", fb | 7, 2, "A_Fire", "NULL"},
	{"SMOKE1", "PUFF", 1, 4, "", "SMOKE2"},
	{"SMOKE2", "PUFF", 2, 4, "", "SMOKE3"},
	{"SMOKE3", "PUFF", 1, 4, "", "SMOKE4"},
	{"SMOKE4", "PUFF", 2, 4, "", "SMOKE5"},
	{"SMOKE5", "PUFF", 3, 4, "", "NULL"},
	{"TRACER", "FATB", fb | 0, 2, "A_Tracer", "TRACER2"},
	{"TRACER2", "FATB", fb | 1, 2, "A_Tracer", "TRACER"},
	{"TRACEEXP1", "FBXP", fb | 0, 8, "", "TRACEEXP2"},
	{"TRACEEXP2", "FBXP", fb | 1, 6, "", "TRACEEXP3"},
	{"TRACEEXP3", "FBXP", fb | 2, 4, "", "NULL"},
	{"SKEL_STND", "SKEL", 0, 10, "A_Look", "SKEL_STND2"},
	{"SKEL_STND2", "SKEL", 1, 10, "A_Look", "SKEL_STND"},
	{"SKEL_RUN1", "SKEL", 0, 2, "A_Chase", "SKEL_RUN2"},
	{"SKEL_RUN2", "SKEL", 0, 2, "A_Chase", "SKEL_RUN3"},
	{"SKEL_RUN3", "SKEL", 1, 2, "A_Chase", "SKEL_RUN4"},
	{"SKEL_RUN4", "SKEL", 1, 2, "A_Chase", "SKEL_RUN5"},
	{"SKEL_RUN5", "SKEL", 2, 2, "A_Chase", "SKEL_RUN6"},
	{"SKEL_RUN6", "SKEL", 2, 2, "A_Chase", "SKEL_RUN7"},
	{"SKEL_RUN7", "SKEL", 3, 2, "A_Chase", "SKEL_RUN8"},
	{"SKEL_RUN8", "SKEL", 3, 2, "A_Chase", "SKEL_RUN9"},
	{"SKEL_RUN9", "SKEL", 4, 2, "A_Chase", "SKEL_RUN10"},
	{"SKEL_RUN10", "SKEL", 4, 2, "A_Chase", "SKEL_RUN11"},
	{"SKEL_RUN11", "SKEL", 5, 2, "A_Chase", "SKEL_RUN12"},
	{"SKEL_RUN12", "SKEL", 5, 2, "A_Chase", "SKEL_RUN1"},
	{"SKEL_FIST1", "SKEL", 6, 0, "A_FaceTarget", "SKEL_FIST2"},
	{"SKEL_FIST2", "SKEL", 6, 6, "A_SkelWhoosh", "SKEL_FIST3"},
	{"SKEL_FIST3", "SKEL", 7, 6, "A_FaceTarget", "SKEL_FIST4"},
	{"SKEL_FIST4", "SKEL", 8, 6, "A_SkelFist", "SKEL_RUN1"},
	{"SKEL_MISS1", "SKEL", fb | 9, 0, "A_FaceTarget", "SKEL_MISS2"},
	{"SKEL_MISS2", "SKEL", fb | 9, 10, "A_FaceTarget", "SKEL_MISS3"},
	{"SKEL_MISS3", "SKEL", 10, 10, "A_SkelMissile", "SKEL_MISS4"},
	{"SKEL_MISS4", "SKEL", 10, 10, "A_FaceTarget", "SKEL_RUN1"},
	{"SKEL_PAIN", "SKEL", 11, 5, "", "SKEL_PAIN2"},
	{"SKEL_PAIN2", "SKEL", 11, 5, "A_Pain", "SKEL_RUN1"},
	{"SKEL_DIE1", "SKEL", 11, 7, "", "SKEL_DIE2"},
	{"SKEL_DIE2", "SKEL", 12, 7, "", "SKEL_DIE3"},
	{"SKEL_DIE3", "SKEL", 13, 7, "A_Scream", "SKEL_DIE4"},
	{"SKEL_DIE4", "SKEL", 14, 7, "A_Fall", "SKEL_DIE5"},
	{"SKEL_DIE5", "SKEL", 15, 7, "", "SKEL_DIE6"},
	{"SKEL_DIE6", "SKEL", 16, -1, "", "NULL"},
	{"SKEL_RAISE1", "SKEL", 16, 5, "", "SKEL_RAISE2"},
	{"SKEL_RAISE2", "SKEL", 15, 5, "", "SKEL_RAISE3"},
	{"SKEL_RAISE3", "SKEL", 14, 5, "", "SKEL_RAISE4"},
	{"SKEL_RAISE4", "SKEL", 13, 5, "", "SKEL_RAISE5"},
	{"SKEL_RAISE5", "SKEL", 12, 5, "", "SKEL_RAISE6"},
	{"SKEL_RAISE6", "SKEL", 11, 5, "", "SKEL_RUN1"},
	{"FATSHOT1", "MANF", fb | 0, 4, "", "FATSHOT2"},
	{"FATSHOT2", "MANF", fb | 1, 4, "", "FATSHOT1"},
	{"FATSHOTX1", "MISL", fb | 1, 8, "", "FATSHOTX2"},
	{"FATSHOTX2", "MISL", fb | 2, 6, "", "FATSHOTX3"},
	{"FATSHOTX3", "MISL", fb | 3, 4, "", "NULL"},
	{"FATT_STND", "FATT", 0, 15, "A_Look", "FATT_STND2"},
	{"FATT_STND2", "FATT", 1, 15, "A_Look", "FATT_STND"},
	{"FATT_RUN1", "FATT", 0, 4, "A_Chase", "FATT_RUN2"},
	{"FATT_RUN2", "FATT", 0, 4, "A_Chase", "FATT_RUN3"},
	{"FATT_RUN3", "FATT", 1, 4, "A_Chase", "FATT_RUN4"},
	{"FATT_RUN4", "FATT", 1, 4, "A_Chase", "FATT_RUN5"},
	{"FATT_RUN5", "FATT", 2, 4, "A_Chase", "FATT_RUN6"},
	{"FATT_RUN6", "FATT", 2, 4, "A_Chase", "FATT_RUN7"},
	{"FATT_RUN7", "FATT", 3, 4, "A_Chase", "FATT_RUN8"},
	{"FATT_RUN8", "FATT", 3, 4, "A_Chase", "FATT_RUN9"},
	{"FATT_RUN9", "FATT", 4, 4, "A_Chase", "FATT_RUN10"},
	{"FATT_RUN10", "FATT", 4, 4, "A_Chase", "FATT_RUN11"},
	{"FATT_RUN11", "FATT", 5, 4, "A_Chase", "FATT_RUN12"},
	{"FATT_RUN12", "FATT", 5, 4, "A_Chase", "FATT_RUN1"},
	{"FATT_ATK1", "FATT", 6, 20, "A_FatRaise", "FATT_ATK2"},
	{"FATT_ATK2", "FATT", fb | 7, 10, "A_FatAttack1", "FATT_ATK3"},
	{"FATT_ATK3", "FATT", 8, 5, "A_FaceTarget", "FATT_ATK4"},
	{"FATT_ATK4", "FATT", 6, 5, "A_FaceTarget", "FATT_ATK5"},
	{"FATT_ATK5", "FATT", fb | 7, 10, "A_FatAttack2", "FATT_ATK6"},
	{"FATT_ATK6", "FATT", 8, 5, "A_FaceTarget", "FATT_ATK7"},
	{"FATT_ATK7", "FATT", 6, 5, "A_FaceTarget", "FATT_ATK8"},
	{"FATT_ATK8", "FATT", fb | 7, 10, "A_FatAttack3", "FATT_ATK9"},
	{"FATT_ATK9", "FATT", 8, 5, "A_FaceTarget", "FATT_ATK10"},
	{"FATT_ATK10", "FATT", 6, 5, "A_FaceTarget", "FATT_RUN1"},
	{"FATT_PAIN", "FATT", 9, 3, "", "FATT_PAIN2"},
	{"FATT_PAIN2", "FATT", 9, 3, "A_Pain", "FATT_RUN1"},
	{"FATT_DIE1", "FATT", 10, 6, "", "FATT_DIE2"},
	{"FATT_DIE2", "FATT", 11, 6, "A_Scream", "FATT_DIE3"},
	{"FATT_DIE3", "FATT", 12, 6, "A_Fall", "FATT_DIE4"},
	{"FATT_DIE4", "FATT", 13, 6, "", "FATT_DIE5"},
	{"FATT_DIE5", "FATT", 14, 6, "", "FATT_DIE6"},
	{"FATT_DIE6", "FATT", 15, 6, "", "FATT_DIE7"},
	{"FATT_DIE7", "FATT", 16, 6, "", "FATT_DIE8"},
	{"FATT_DIE8", "FATT", 17, 6, "", "FATT_DIE9"},
	{"FATT_DIE9", "FATT", 18, 6, "", "FATT_DIE10"},
	{"FATT_DIE10", "FATT", 19, -1, "A_BossDeath", "NULL"},
	{"FATT_RAISE1", "FATT", 17, 5, "", "FATT_RAISE2"},
	{"FATT_RAISE2", "FATT", 16, 5, "", "FATT_RAISE3"},
	{"FATT_RAISE3", "FATT", 15, 5, "", "FATT_RAISE4"},
	{"FATT_RAISE4", "FATT", 14, 5, "", "FATT_RAISE5"},
	{"FATT_RAISE5", "FATT", 13, 5, "", "FATT_RAISE6"},
	{"FATT_RAISE6", "FATT", 12, 5, "", "FATT_RAISE7"},
	{"FATT_RAISE7", "FATT", 11, 5, "", "FATT_RAISE8"},
	{"FATT_RAISE8", "FATT", 10, 5, "", "FATT_RUN1"},
	{"CPOS_STND", "CPOS", 0, 10, "A_Look", "CPOS_STND2"},
	{"CPOS_STND2", "CPOS", 1, 10, "A_Look", "CPOS_STND"},
	{"CPOS_RUN1", "CPOS", 0, 3, "A_Chase", "CPOS_RUN2"},
	{"CPOS_RUN2", "CPOS", 0, 3, "A_Chase", "CPOS_RUN3"},
	{"CPOS_RUN3", "CPOS", 1, 3, "A_Chase", "CPOS_RUN4"},
	{"CPOS_RUN4", "CPOS", 1, 3, "A_Chase", "CPOS_RUN5"},
	{"CPOS_RUN5", "CPOS", 2, 3, "A_Chase", "CPOS_RUN6"},
	{"CPOS_RUN6", "CPOS", 2, 3, "A_Chase", "CPOS_RUN7"},
	{"CPOS_RUN7", "CPOS", 3, 3, "A_Chase", "CPOS_RUN8"},
	{"CPOS_RUN8", "CPOS", 3, 3, "A_Chase", "CPOS_RUN1"},
	{"CPOS_ATK1", "CPOS", 4, 10, "A_FaceTarget", "CPOS_ATK2"},
	{"CPOS_ATK2", "CPOS", fb | 5, 4, "A_CPosAttack", "CPOS_ATK3"},
	{"CPOS_ATK3", "CPOS", fb | 4, 4, "A_CPosAttack", "CPOS_ATK4"},
	{"CPOS_ATK4", "CPOS", 5, 1, "A_CPosRefire", "CPOS_ATK2"},
	{"CPOS_PAIN", "CPOS", 6, 3, "", "CPOS_PAIN2"},
	{"CPOS_PAIN2", "CPOS", 6, 3, "A_Pain", "CPOS_RUN1"},
	{"CPOS_DIE1", "CPOS", 7, 5, "", "CPOS_DIE2"},
	{"CPOS_DIE2", "CPOS", 8, 5, "A_Scream", "CPOS_DIE3"},
	{"CPOS_DIE3", "CPOS", 9, 5, "A_Fall", "CPOS_DIE4"},
	{"CPOS_DIE4", "CPOS", 10, 5, "", "CPOS_DIE5"},
	{"CPOS_DIE5", "CPOS", 11, 5, "", "CPOS_DIE6"},
	{"CPOS_DIE6", "CPOS", 12, 5, "", "CPOS_DIE7"},
	{"CPOS_DIE7", "CPOS", 13, -1, "", "NULL"},
	{"CPOS_XDIE1", "CPOS", 14, 5, "", "CPOS_XDIE2"},
	{"CPOS_XDIE2", "CPOS", 15, 5, "A_XScream", "CPOS_XDIE3"},
	{"CPOS_XDIE3", "CPOS", 16, 5, "A_Fall", "CPOS_XDIE4"},
	{"CPOS_XDIE4", "CPOS", 17, 5, "", "CPOS_XDIE5"},
	{"CPOS_XDIE5", "CPOS", 18, 5, "", "CPOS_XDIE6"},
	{"CPOS_XDIE6", "CPOS", 19, -1, "", "NULL"},
	{"CPOS_RAISE1", "CPOS", 13, 5, "", "CPOS_RAISE2"},
	{"CPOS_RAISE2", "CPOS", 12, 5, "", "CPOS_RAISE3"},
	{"CPOS_RAISE3", "CPOS", 11, 5, "", "CPOS_RAISE4"},
	{"CPOS_RAISE4", "CPOS", 10, 5, "", "CPOS_RAISE5"},
	{"CPOS_RAISE5", "CPOS", 9, 5, "", "CPOS_RAISE6"},
	{"CPOS_RAISE6", "CPOS", 8, 5, "", "CPOS_RAISE7"},
	{"CPOS_RAISE7", "CPOS", 7, 5, "", "CPOS_RUN1"},
	{"TROO_STND", "TROO", 0, 10, "A_Look", "TROO_STND2"},
	{"TROO_STND2", "TROO", 1, 10, "A_Look", "TROO_STND"},
	{"TROO_RUN1", "TROO", 0, 3, "A_Chase", "TROO_RUN2"},
	{"TROO_RUN2", "TROO", 0, 3, "A_Chase", "TROO_RUN3"},
	{"TROO_RUN3", "TROO", 1, 3, "A_Chase", "TROO_RUN4"},
	{"TROO_RUN4", "TROO", 1, 3, "A_Chase", "TROO_RUN5"},
	{"TROO_RUN5", "TROO", 2, 3, "A_Chase", "TROO_RUN6"},
	{"TROO_RUN6", "TROO", 2, 3, "A_Chase", "TROO_RUN7"},
	{"TROO_RUN7", "TROO", 3, 3, "A_Chase", "TROO_RUN8"},
	{"TROO_RUN8", "TROO", 3, 3, "A_Chase", "TROO_RUN1"},
	{"TROO_ATK1", "TROO", 4, 8, "A_FaceTarget", "TROO_ATK2"},
	{"TROO_ATK2", "TROO", 5, 8, "A_FaceTarget", "TROO_ATK3"},
	{"TROO_ATK3", "TROO", 6, 6, "A_TroopAttack", "TROO_RUN1"},
	{"TROO_PAIN", "TROO", 7, 2, "", "TROO_PAIN2"},
	{"TROO_PAIN2", "TROO", 7, 2, "A_Pain", "TROO_RUN1"},
	{"TROO_DIE1", "TROO", 8, 8, "", "TROO_DIE2"},
	{"TROO_DIE2", "TROO", 9, 8, "A_Scream", "TROO_DIE3"},
	{"TROO_DIE3", "TROO", 10, 6, "", "TROO_DIE4"},
	{"TROO_DIE4", "TROO", 11, 6, "A_Fall", "TROO_DIE5"},
	{"TROO_DIE5", "TROO", 12, -1, "", "NULL"},
	{"TROO_XDIE1", "TROO", 13, 5, "", "TROO_XDIE2"},
	{"TROO_XDIE2", "TROO", 14, 5, "A_XScream", "TROO_XDIE3"},
	{"TROO_XDIE3", "TROO", 15, 5, "", "TROO_XDIE4"},
	{"TROO_XDIE4", "TROO", 16, 5, "A_Fall", "TROO_XDIE5"},
	{"TROO_XDIE5", "TROO", 17, 5, "", "TROO_XDIE6"},
	{"TROO_XDIE6", "TROO", 18, 5, "", "TROO_XDIE7"},
	{"TROO_XDIE7", "TROO", 19, 5, "", "TROO_XDIE8"},
	{"TROO_XDIE8", "TROO", 20, -1, "", "NULL"},
	{"TROO_RAISE1", "TROO", 12, 8, "", "TROO_RAISE2"},
	{"TROO_RAISE2", "TROO", 11, 8, "", "TROO_RAISE3"},
	{"TROO_RAISE3", "TROO", 10, 6, "", "TROO_RAISE4"},
	{"TROO_RAISE4", "TROO", 9, 6, "", "TROO_RAISE5"},
	{"TROO_RAISE5", "TROO", 8, 6, "", "TROO_RUN1"},
	{"SARG_STND", "SARG", 0, 10, "A_Look", "SARG_STND2"},
	{"SARG_STND2", "SARG", 1, 10, "A_Look", "SARG_STND"},
	{"SARG_RUN1", "SARG", 0, 2, "A_Chase", "SARG_RUN2"},
	{"SARG_RUN2", "SARG", 0, 2, "A_Chase", "SARG_RUN3"},
	{"SARG_RUN3", "SARG", 1, 2, "A_Chase", "SARG_RUN4"},
	{"SARG_RUN4", "SARG", 1, 2, "A_Chase", "SARG_RUN5"},
	{"SARG_RUN5", "SARG", 2, 2, "A_Chase", "SARG_RUN6"},
	{"SARG_RUN6", "SARG", 2, 2, "A_Chase", "SARG_RUN7"},
	{"SARG_RUN7", "SARG", 3, 2, "A_Chase", "SARG_RUN8"},
	{"SARG_RUN8", "SARG", 3, 2, "A_Chase", "SARG_RUN1"},
	{"SARG_ATK1", "SARG", 4, 8, "A_FaceTarget", "SARG_ATK2"},
	{"SARG_ATK2", "SARG", 5, 8, "A_FaceTarget", "SARG_ATK3"},
	{"SARG_ATK3", "SARG", 6, 8, "A_SargAttack", "SARG_RUN1"},
	{"SARG_PAIN", "SARG", 7, 2, "", "SARG_PAIN2"},
	{"SARG_PAIN2", "SARG", 7, 2, "A_Pain", "SARG_RUN1"},
	{"SARG_DIE1", "SARG", 8, 8, "", "SARG_DIE2"},
	{"SARG_DIE2", "SARG", 9, 8, "A_Scream", "SARG_DIE3"},
	{"SARG_DIE3", "SARG", 10, 4, "", "SARG_DIE4"},
	{"SARG_DIE4", "SARG", 11, 4, "A_Fall", "SARG_DIE5"},
	{"SARG_DIE5", "SARG", 12, 4, "", "SARG_DIE6"},
	{"SARG_DIE6", "SARG", 13, -1, "", "NULL"},
	{"SARG_RAISE1", "SARG", 13, 5, "", "SARG_RAISE2"},
	{"SARG_RAISE2", "SARG", 12, 5, "", "SARG_RAISE3"},
	{"SARG_RAISE3", "SARG", 11, 5, "", "SARG_RAISE4"},
	{"SARG_RAISE4", "SARG", 10, 5, "", "SARG_RAISE5"},
	{"SARG_RAISE5", "SARG", 9, 5, "", "SARG_RAISE6"},
	{"SARG_RAISE6", "SARG", 8, 5, "", "SARG_RUN1"},
	{"HEAD_STND", "HEAD", 0, 10, "A_Look", "HEAD_STND"},
	{"HEAD_RUN1", "HEAD", 0, 3, "A_Chase", "HEAD_RUN1"},
	{"HEAD_ATK1", "HEAD", 1, 5, "A_FaceTarget", "HEAD_ATK2"},
	{"HEAD_ATK2", "HEAD", 2, 5, "A_FaceTarget", "HEAD_ATK3"},
	{"HEAD_ATK3", "HEAD", fb | 3, 5, "A_HeadAttack", "HEAD_RUN1"},
	{"HEAD_PAIN", "HEAD", 4, 3, "", "HEAD_PAIN2"},
	{"HEAD_PAIN2", "HEAD", 4, 3, "A_Pain", "HEAD_PAIN3"},
	{"HEAD_PAIN3", "HEAD", 5, 6, "", "HEAD_RUN1"},
	{"HEAD_DIE1", "HEAD", 6, 8, "", "HEAD_DIE2"},
	{"HEAD_DIE2", "HEAD", 7, 8, "A_Scream", "HEAD_DIE3"},
	{"HEAD_DIE3", "HEAD", 8, 8, "", "HEAD_DIE4"},
	{"HEAD_DIE4", "HEAD", 9, 8, "", "HEAD_DIE5"},
	{"HEAD_DIE5", "HEAD", 10, 8, "A_Fall", "HEAD_DIE6"},
	{"HEAD_DIE6", "HEAD", 11, -1, "", "NULL"},
	{"HEAD_RAISE1", "HEAD", 11, 8, "", "HEAD_RAISE2"},
	{"HEAD_RAISE2", "HEAD", 10, 8, "", "HEAD_RAISE3"},
	{"HEAD_RAISE3", "HEAD", 9, 8, "", "HEAD_RAISE4"},
	{"HEAD_RAISE4", "HEAD", 8, 8, "", "HEAD_RAISE5"},
	{"HEAD_RAISE5", "HEAD", 7, 8, "", "HEAD_RAISE6"},
	{"HEAD_RAISE6", "HEAD", 6, 8, "", "HEAD_RUN1"},
	{"BRBALL1", "BAL7", fb | 0, 4, "", "BRBALL2"},
	{"BRBALL2", "BAL7", fb | 1, 4, "", "BRBALL1"},
	{"BRBALLX1", "BAL7", fb | 2, 6, "", "BRBALLX2"},
	{"BRBALLX2", "BAL7", fb | 3, 6, "", "BRBALLX3"},
	{"BRBALLX3", "BAL7", fb | 4, 6, "", "NULL"},
	{"BOSS_STND", "BOSS", 0, 10, "A_Look", "BOSS_STND2"},
	{"BOSS_STND2", "BOSS", 1, 10, "A_Look", "BOSS_STND"},
	{"BOSS_RUN1", "BOSS", 0, 3, "A_Chase", "BOSS_RUN2"},
	{"BOSS_RUN2", "BOSS", 0, 3, "A_Chase", "BOSS_RUN3"},
	{"BOSS_RUN3", "BOSS", 1, 3, "A_Chase", "BOSS_RUN4"},
	{"BOSS_RUN4", "BOSS", 1, 3, "A_Chase", "BOSS_RUN5"},
	{"BOSS_RUN5", "BOSS", 2, 3, "A_Chase", "BOSS_RUN6"},
	{"BOSS_RUN6", "BOSS", 2, 3, "A_Chase", "BOSS_RUN7"},
	{"BOSS_RUN7", "BOSS", 3, 3, "A_Chase", "BOSS_RUN8"},
	{"BOSS_RUN8", "BOSS", 3, 3, "A_Chase", "BOSS_RUN1"},
	{"BOSS_ATK1", "BOSS", 4, 8, "A_FaceTarget", "BOSS_ATK2"},
	{"BOSS_ATK2", "BOSS", 5, 8, "A_FaceTarget", "BOSS_ATK3"},
	{"BOSS_ATK3", "BOSS", 6, 8, "A_BruisAttack", "BOSS_RUN1"},
	{"BOSS_PAIN", "BOSS", 7, 2, "", "BOSS_PAIN2"},
	{"BOSS_PAIN2", "BOSS", 7, 2, "A_Pain", "BOSS_RUN1"},
	{"BOSS_DIE1", "BOSS", 8, 8, "", "BOSS_DIE2"},
	{"BOSS_DIE2", "BOSS", 9, 8, "A_Scream", "BOSS_DIE3"},
	{"BOSS_DIE3", "BOSS", 10, 8, "", "BOSS_DIE4"},
	{"BOSS_DIE4", "BOSS", 11, 8, "A_Fall", "BOSS_DIE5"},
	{"BOSS_DIE5", "BOSS", 12, 8, "", "BOSS_DIE6"},
	{"BOSS_DIE6", "BOSS", 13, 8, "", "BOSS_DIE7"},
	{"BOSS_DIE7", "BOSS", 14, -1, "A_BossDeath", "NULL"},
	{"BOSS_RAISE1", "BOSS", 14, 8, "", "BOSS_RAISE2"},
	{"BOSS_RAISE2", "BOSS", 13, 8, "", "BOSS_RAISE3"},
	{"BOSS_RAISE3", "BOSS", 12, 8, "", "BOSS_RAISE4"},
	{"BOSS_RAISE4", "BOSS", 11, 8, "", "BOSS_RAISE5"},
	{"BOSS_RAISE5", "BOSS", 10, 8, "", "BOSS_RAISE6"},
	{"BOSS_RAISE6", "BOSS", 9, 8, "", "BOSS_RAISE7"},
	{"BOSS_RAISE7", "BOSS", 8, 8, "", "BOSS_RUN1"},
	{"BOS2_STND", "BOS2", 0, 10, "A_Look", "BOS2_STND2"},
	{"BOS2_STND2", "BOS2", 1, 10, "A_Look", "BOS2_STND"},
	{"BOS2_RUN1", "BOS2", 0, 3, "A_Chase", "BOS2_RUN2"},
	{"BOS2_RUN2", "BOS2", 0, 3, "A_Chase", "BOS2_RUN3"},
	{"BOS2_RUN3", "BOS2", 1, 3, "A_Chase", "BOS2_RUN4"},
	{"BOS2_RUN4", "BOS2", 1, 3, "A_Chase", "BOS2_RUN5"},
	{"BOS2_RUN5", "BOS2", 2, 3, "A_Chase", "BOS2_RUN6"},
	{"BOS2_RUN6", "BOS2", 2, 3, "A_Chase", "BOS2_RUN7"},
	{"BOS2_RUN7", "BOS2", 3, 3, "A_Chase", "BOS2_RUN8"},
	{"BOS2_RUN8", "BOS2", 3, 3, "A_Chase", "BOS2_RUN1"},
	{"BOS2_ATK1", "BOS2", 4, 8, "A_FaceTarget", "BOS2_ATK2"},
	{"BOS2_ATK2", "BOS2", 5, 8, "A_FaceTarget", "BOS2_ATK3"},
	{"BOS2_ATK3", "BOS2", 6, 8, "A_BruisAttack", "BOS2_RUN1"},
	{"BOS2_PAIN", "BOS2", 7, 2, "", "BOS2_PAIN2"},
	{"BOS2_PAIN2", "BOS2", 7, 2, "A_Pain", "BOS2_RUN1"},
	{"BOS2_DIE1", "BOS2", 8, 8, "", "BOS2_DIE2"},
	{"BOS2_DIE2", "BOS2", 9, 8, "A_Scream", "BOS2_DIE3"},
	{"BOS2_DIE3", "BOS2", 10, 8, "", "BOS2_DIE4"},
	{"BOS2_DIE4", "BOS2", 11, 8, "A_Fall", "BOS2_DIE5"},
	{"BOS2_DIE5", "BOS2", 12, 8, "", "BOS2_DIE6"},
	{"BOS2_DIE6", "BOS2", 13, 8, "", "BOS2_DIE7"},
	{"BOS2_DIE7", "BOS2", 14, -1, "", "NULL"},
	{"BOS2_RAISE1", "BOS2", 14, 8, "", "BOS2_RAISE2"},
	{"BOS2_RAISE2", "BOS2", 13, 8, "", "BOS2_RAISE3"},
	{"BOS2_RAISE3", "BOS2", 12, 8, "", "BOS2_RAISE4"},
	{"BOS2_RAISE4", "BOS2", 11, 8, "", "BOS2_RAISE5"},
	{"BOS2_RAISE5", "BOS2", 10, 8, "", "BOS2_RAISE6"},
	{"BOS2_RAISE6", "BOS2", 9, 8, "", "BOS2_RAISE7"},
	{"BOS2_RAISE7", "BOS2", 8, 8, "", "BOS2_RUN1"},
	{"SKULL_STND", "SKUL", fb | 0, 10, "A_Look", "SKULL_STND2"},
	{"SKULL_STND2", "SKUL", fb | 1, 10, "A_Look", "SKULL_STND"},
	{"SKULL_RUN1", "SKUL", fb | 0, 6, "A_Chase", "SKULL_RUN2"},
	{"SKULL_RUN2", "SKUL", fb | 1, 6, "A_Chase", "SKULL_RUN1"},
	{"SKULL_ATK1", "SKUL", fb | 2, 10, "A_FaceTarget", "SKULL_ATK2"},
	{"SKULL_ATK2", "SKUL", fb | 3, 4, "A_SkullAttack", "SKULL_ATK3"},
	{"SKULL_ATK3", "SKUL", fb | 2, 4, "", "SKULL_ATK4"},
	{"SKULL_ATK4", "SKUL", fb | 3, 4, "", "SKULL_ATK3"},
	{"SKULL_PAIN", "SKUL", fb | 4, 3, "", "SKULL_PAIN2"},
	{"SKULL_PAIN2", "SKUL", fb | 4, 3, "A_Pain", "SKULL_RUN1"},
	{"SKULL_DIE1", "SKUL", fb | 5, 6, "", "SKULL_DIE2"},
	{"SKULL_DIE2", "SKUL", fb | 6, 6, "A_Scream", "SKULL_DIE3"},
	{"SKULL_DIE3", "SKUL", fb | 7, 6, "", "SKULL_DIE4"},
	{"SKULL_DIE4", "SKUL", fb | 8, 6, "A_Fall", "SKULL_DIE5"},
	{"SKULL_DIE5", "SKUL", 9, 6, "", "SKULL_DIE6"},
	{"SKULL_DIE6", "SKUL", 10, 6, "", "NULL"},
	{"SPID_STND", "SPID", 0, 10, "A_Look", "SPID_STND2"},
	{"SPID_STND2", "SPID", 1, 10, "A_Look", "SPID_STND"},
	{"SPID_RUN1", "SPID", 0, 3, "A_Metal", "SPID_RUN2"},
	{"SPID_RUN2", "SPID", 0, 3, "A_Chase", "SPID_RUN3"},
	{"SPID_RUN3", "SPID", 1, 3, "A_Chase", "SPID_RUN4"},
	{"SPID_RUN4", "SPID", 1, 3, "A_Chase", "SPID_RUN5"},
	{"SPID_RUN5", "SPID", 2, 3, "A_Metal", "SPID_RUN6"},
	{"SPID_RUN6", "SPID", 2, 3, "A_Chase", "SPID_RUN7"},
	{"SPID_RUN7", "SPID", 3, 3, "A_Chase", "SPID_RUN8"},
	{"SPID_RUN8", "SPID", 3, 3, "A_Chase", "SPID_RUN9"},
	{"SPID_RUN9", "SPID", 4, 3, "A_Metal", "SPID_RUN10"},
	{"SPID_RUN10", "SPID", 4, 3, "A_Chase", "SPID_RUN11"},
	{"SPID_RUN11", "SPID", 5, 3, "A_Chase", "SPID_RUN12"},
	{"SPID_RUN12", "SPID", 5, 3, "A_Chase", "SPID_RUN1"},
	{"SPID_ATK1", "SPID", fb | 0, 20, "A_FaceTarget", "SPID_ATK2"},
	{"SPID_ATK2", "SPID", fb | 6, 4, "A_SPosAttack", "SPID_ATK3"},
	{"SPID_ATK3", "SPID", fb | 7, 4, "A_SPosAttack", "SPID_ATK4"},
	{"SPID_ATK4", "SPID", fb | 7, 1, "A_SpidRefire", "SPID_ATK2"},
	{"SPID_PAIN", "SPID", 8, 3, "", "SPID_PAIN2"},
	{"SPID_PAIN2", "SPID", 8, 3, "A_Pain", "SPID_RUN1"},
	{"SPID_DIE1", "SPID", 9, 20, "A_Scream", "SPID_DIE2"},
	{"SPID_DIE2", "SPID", 10, 10, "A_Fall", "SPID_DIE3"},
	{"SPID_DIE3", "SPID", 11, 10, "", "SPID_DIE4"},
	{"SPID_DIE4", "SPID", 12, 10, "", "SPID_DIE5"},
	{"SPID_DIE5", "SPID", 13, 10, "", "SPID_DIE6"},
	{"SPID_DIE6", "SPID", 14, 10, "", "SPID_DIE7"},
	{"SPID_DIE7", "SPID", 15, 10, "", "SPID_DIE8"},
	{"SPID_DIE8", "SPID", 16, 10, "", "SPID_DIE9"},
	{"SPID_DIE9", "SPID", 17, 10, "", "SPID_DIE10"},
	{"SPID_DIE10", "SPID", 18, 30, "", "SPID_DIE11"},
	{"SPID_DIE11", "SPID", 18, -1, "A_BossDeath", "NULL"},
	{"BSPI_STND", "BSPI", 0, 10, "A_Look", "BSPI_STND2"},
	{"BSPI_STND2", "BSPI", 1, 10, "A_Look", "BSPI_STND"},
	{"BSPI_SIGHT", "BSPI", 0, 20, "", "BSPI_RUN1"},
	{"BSPI_RUN1", "BSPI", 0, 3, "A_BabyMetal", "BSPI_RUN2"},
	{"BSPI_RUN2", "BSPI", 0, 3, "A_Chase", "BSPI_RUN3"},
	{"BSPI_RUN3", "BSPI", 1, 3, "A_Chase", "BSPI_RUN4"},
	{"BSPI_RUN4", "BSPI", 1, 3, "A_Chase", "BSPI_RUN5"},
	{"BSPI_RUN5", "BSPI", 2, 3, "A_Chase", "BSPI_RUN6"},
	{"BSPI_RUN6", "BSPI", 2, 3, "A_Chase", "BSPI_RUN7"},
	{"BSPI_RUN7", "BSPI", 3, 3, "A_BabyMetal", "BSPI_RUN8"},
	{"BSPI_RUN8", "BSPI", 3, 3, "A_Chase", "BSPI_RUN9"},
	{"BSPI_RUN9", "BSPI", 4, 3, "A_Chase", "BSPI_RUN10"},
	{"BSPI_RUN10", "BSPI", 4, 3, "A_Chase", "BSPI_RUN11"},
	{"BSPI_RUN11", "BSPI", 5, 3, "A_Chase", "BSPI_RUN12"},
	{"BSPI_RUN12", "BSPI", 5, 3, "A_Chase", "BSPI_RUN1"},
	{"BSPI_ATK1", "BSPI", fb | 0, 20, "A_FaceTarget", "BSPI_ATK2"},
	{"BSPI_ATK2", "BSPI", fb | 6, 4, "A_BspiAttack", "BSPI_ATK3"},
	{"BSPI_ATK3", "BSPI", fb | 7, 4, "", "BSPI_ATK4"},
	{"BSPI_ATK4", "BSPI", fb | 7, 1, "A_SpidRefire", "BSPI_ATK2"},
	{"BSPI_PAIN", "BSPI", 8, 3, "", "BSPI_PAIN2"},
	{"BSPI_PAIN2", "BSPI", 8, 3, "A_Pain", "BSPI_RUN1"},
	{"BSPI_DIE1", "BSPI", 9, 20, "A_Scream", "BSPI_DIE2"},
	{"BSPI_DIE2", "BSPI", 10, 7, "A_Fall", "BSPI_DIE3"},
	{"BSPI_DIE3", "BSPI", 11, 7, "", "BSPI_DIE4"},
	{"BSPI_DIE4", "BSPI", 12, 7, "", "BSPI_DIE5"},
	{"BSPI_DIE5", "BSPI", 13, 7, "", "BSPI_DIE6"},
	{"BSPI_DIE6", "BSPI", 14, 7, "", "BSPI_DIE7"},
	{"BSPI_DIE7", "BSPI", 15, -1, "A_BossDeath", "NULL"},
	{"BSPI_RAISE1", "BSPI", 15, 5, "", "BSPI_RAISE2"},
	{"BSPI_RAISE2", "BSPI", 14, 5, "", "BSPI_RAISE3"},
	{"BSPI_RAISE3", "BSPI", 13, 5, "", "BSPI_RAISE4"},
	{"BSPI_RAISE4", "BSPI", 12, 5, "", "BSPI_RAISE5"},
	{"BSPI_RAISE5", "BSPI", 11, 5, "", "BSPI_RAISE6"},
	{"BSPI_RAISE6", "BSPI", 10, 5, "", "BSPI_RAISE7"},
	{"BSPI_RAISE7", "BSPI", 9, 5, "", "BSPI_RUN1"},
	{"ARACH_PLAZ", "APLS", fb | 0, 5, "", "ARACH_PLAZ2"},
	{"ARACH_PLAZ2", "APLS", fb | 1, 5, "", "ARACH_PLAZ"},
	{"ARACH_PLEX", "APBX", fb | 0, 5, "", "ARACH_PLEX2"},
	{"ARACH_PLEX2", "APBX", fb | 1, 5, "", "ARACH_PLEX3"},
	{"ARACH_PLEX3", "APBX", fb | 2, 5, "", "ARACH_PLEX4"},
	{"ARACH_PLEX4", "APBX", fb | 3, 5, "", "ARACH_PLEX5"},
	{"ARACH_PLEX5", "APBX", fb | 4, 5, "", "NULL"},
	{"CYBER_STND", "CYBR", 0, 10, "A_Look", "CYBER_STND2"},
	{"CYBER_STND2", "CYBR", 1, 10, "A_Look", "CYBER_STND"},
	{"CYBER_RUN1", "CYBR", 0, 3, "A_Hoof", "CYBER_RUN2"},
	{"CYBER_RUN2", "CYBR", 0, 3, "A_Chase", "CYBER_RUN3"},
	{"CYBER_RUN3", "CYBR", 1, 3, "A_Chase", "CYBER_RUN4"},
	{"CYBER_RUN4", "CYBR", 1, 3, "A_Chase", "CYBER_RUN5"},
	{"CYBER_RUN5", "CYBR", 2, 3, "A_Chase", "CYBER_RUN6"},
	{"CYBER_RUN6", "CYBR", 2, 3, "A_Chase", "CYBER_RUN7"},
	{"CYBER_RUN7", "CYBR", 3, 3, "A_Metal", "CYBER_RUN8"},
	{"CYBER_RUN8", "CYBR", 3, 3, "A_Chase", "CYBER_RUN1"},
	{"CYBER_ATK1", "CYBR", 4, 6, "A_FaceTarget", "CYBER_ATK2"},
	{"CYBER_ATK2", "CYBR", 5, 12, "A_CyberAttack", "CYBER_ATK3"},
	{"CYBER_ATK3", "CYBR", 4, 12, "A_FaceTarget", "CYBER_ATK4"},
	{"CYBER_ATK4", "CYBR", 5, 12, "A_CyberAttack", "CYBER_ATK5"},
	{"CYBER_ATK5", "CYBR", 4, 12, "A_FaceTarget", "CYBER_ATK6"},
	{"CYBER_ATK6", "CYBR", 5, 12, "A_CyberAttack", "CYBER_RUN1"},
	{"CYBER_PAIN", "CYBR", 6, 10, "A_Pain", "CYBER_RUN1"},
	{"CYBER_DIE1", "CYBR", 7, 10, "", "CYBER_DIE2"},
	{"CYBER_DIE2", "CYBR", 8, 10, "A_Scream", "CYBER_DIE3"},
	{"CYBER_DIE3", "CYBR", 9, 10, "", "CYBER_DIE4"},
	{"CYBER_DIE4", "CYBR", 10, 10, "", "CYBER_DIE5"},
	{"CYBER_DIE5", "CYBR", 11, 10, "", "CYBER_DIE6"},
	{"CYBER_DIE6", "CYBR", 12, 10, "A_Fall", "CYBER_DIE7"},
	{"CYBER_DIE7", "CYBR", 13, 10, "", "CYBER_DIE8"},
	{"CYBER_DIE8", "CYBR", 14, 10, "", "CYBER_DIE9"},
	{"CYBER_DIE9", "CYBR", 15, 30, "", "CYBER_DIE10"},
	{"CYBER_DIE10", "CYBR", 15, -1, "A_BossDeath", "NULL"},
	{"PAIN_STND", "PAIN", 0, 10, "A_Look", "PAIN_STND"},
	{"PAIN_RUN1", "PAIN", 0, 3, "A_Chase", "PAIN_RUN2"},
	{"PAIN_RUN2", "PAIN", 0, 3, "A_Chase", "PAIN_RUN3"},
	{"PAIN_RUN3", "PAIN", 1, 3, "A_Chase", "PAIN_RUN4"},
	{"PAIN_RUN4", "PAIN", 1, 3, "A_Chase", "PAIN_RUN5"},
	{"PAIN_RUN5", "PAIN", 2, 3, "A_Chase", "PAIN_RUN6"},
	{"PAIN_RUN6", "PAIN", 2, 3, "A_Chase", "PAIN_RUN1"},
	{"PAIN_ATK1", "PAIN", 3, 5, "A_FaceTarget", "PAIN_ATK2"},
	{"PAIN_ATK2", "PAIN", 4, 5, "A_FaceTarget", "PAIN_ATK3"},
	{"PAIN_ATK3", "PAIN", fb | 5, 5, "A_FaceTarget", "PAIN_ATK4"},
	{"PAIN_ATK4", "PAIN", fb | 5, 0, "A_PainAttack", "PAIN_RUN1"},
	{"PAIN_PAIN", "PAIN", 6, 6, "", "PAIN_PAIN2"},
	{"PAIN_PAIN2", "PAIN", 6, 6, "A_Pain", "PAIN_RUN1"},
	{"PAIN_DIE1", "PAIN", fb | 7, 8, "", "PAIN_DIE2"},
	{"PAIN_DIE2", "PAIN", fb | 8, 8, "A_Scream", "PAIN_DIE3"},
	{"PAIN_DIE3", "PAIN", fb | 9, 8, "", "PAIN_DIE4"},
	{"PAIN_DIE4", "PAIN", fb | 10, 8, "", "PAIN_DIE5"},
	{"PAIN_DIE5", "PAIN", fb | 11, 8, "A_PainDie", "PAIN_DIE6"},
	{"PAIN_DIE6", "PAIN", fb | 12, 8, "", "NULL"},
	{"PAIN_RAISE1", "PAIN", 12, 8, "", "PAIN_RAISE2"},
	{"PAIN_RAISE2", "PAIN", 11, 8, "", "PAIN_RAISE3"},
	{"PAIN_RAISE3", "PAIN", 10, 8, "", "PAIN_RAISE4"},
	{"PAIN_RAISE4", "PAIN", 9, 8, "", "PAIN_RAISE5"},
	{"PAIN_RAISE5", "PAIN", 8, 8, "", "PAIN_RAISE6"},
	{"PAIN_RAISE6", "PAIN", 7, 8, "", "PAIN_RUN1"},
	{"SSWV_STND", "SSWV", 0, 10, "A_Look", "SSWV_STND2"},
	{"SSWV_STND2", "SSWV", 1, 10, "A_Look", "SSWV_STND"},
	{"SSWV_RUN1", "SSWV", 0, 3, "A_Chase", "SSWV_RUN2"},
	{"SSWV_RUN2", "SSWV", 0, 3, "A_Chase", "SSWV_RUN3"},
	{"SSWV_RUN3", "SSWV", 1, 3, "A_Chase", "SSWV_RUN4"},
	{"SSWV_RUN4", "SSWV", 1, 3, "A_Chase", "SSWV_RUN5"},
	{"SSWV_RUN5", "SSWV", 2, 3, "A_Chase", "SSWV_RUN6"},
	{"SSWV_RUN6", "SSWV", 2, 3, "A_Chase", "SSWV_RUN7"},
	{"SSWV_RUN7", "SSWV", 3, 3, "A_Chase", "SSWV_RUN8"},
	{"SSWV_RUN8", "SSWV", 3, 3, "A_Chase", "SSWV_RUN1"},
	{"SSWV_ATK1", "SSWV", 4, 10, "A_FaceTarget", "SSWV_ATK2"},
	{"SSWV_ATK2", "SSWV", 5, 10, "A_FaceTarget", "SSWV_ATK3"},
	{"SSWV_ATK3", "SSWV", fb | 6, 4, "A_CPosAttack", "SSWV_ATK4"},
	{"SSWV_ATK4", "SSWV", 5, 6, "A_FaceTarget", "SSWV_ATK5"},
	{"SSWV_ATK5", "SSWV", fb | 6, 4, "A_CPosAttack", "SSWV_ATK6"},
	{"SSWV_ATK6", "SSWV", 5, 1, "A_CPosRefire", "SSWV_ATK2"},
	{"SSWV_PAIN", "SSWV", 7, 3, "", "SSWV_PAIN2"},
	{"SSWV_PAIN2", "SSWV", 7, 3, "A_Pain", "SSWV_RUN1"},
	{"SSWV_DIE1", "SSWV", 8, 5, "", "SSWV_DIE2"},
	{"SSWV_DIE2", "SSWV", 9, 5, "A_Scream", "SSWV_DIE3"},
	{"SSWV_DIE3", "SSWV", 10, 5, "A_Fall", "SSWV_DIE4"},
	{"SSWV_DIE4", "SSWV", 11, 5, "", "SSWV_DIE5"},
	{"SSWV_DIE5", "SSWV", 12, -1, "", "NULL"},
	{"SSWV_XDIE1", "SSWV", 13, 5, "", "SSWV_XDIE2"},
	{"SSWV_XDIE2", "SSWV", 14, 5, "A_XScream", "SSWV_XDIE3"},
	{"SSWV_XDIE3", "SSWV", 15, 5, "A_Fall", "SSWV_XDIE4"},
	{"SSWV_XDIE4", "SSWV", 16, 5, "", "SSWV_XDIE5"},
	{"SSWV_XDIE5", "SSWV", 17, 5, "", "SSWV_XDIE6"},
	{"SSWV_XDIE6", "SSWV", 18, 5, "", "SSWV_XDIE7"},
	{"SSWV_XDIE7", "SSWV", 19, 5, "", "SSWV_XDIE8"},
	{"SSWV_XDIE8", "SSWV", 20, 5, "", "SSWV_XDIE9"},
	{"SSWV_XDIE9", "SSWV", 21, -1, "", "NULL"},
	{"SSWV_RAISE1", "SSWV", 12, 5, "", "SSWV_RAISE2"},
	{"SSWV_RAISE2", "SSWV", 11, 5, "", "SSWV_RAISE3"},
	{"SSWV_RAISE3", "SSWV", 10, 5, "", "SSWV_RAISE4"},
	{"SSWV_RAISE4", "SSWV", 9, 5, "", "SSWV_RAISE5"},
	{"SSWV_RAISE5", "SSWV", 8, 5, "", "SSWV_RUN1"},
	{"KEENSTND", "KEEN", 0, -1, "", "KEENSTND"},
	{"COMMKEEN", "KEEN", 0, 6, "", "COMMKEEN2"},
	{"COMMKEEN2", "KEEN", 1, 6, "", "COMMKEEN3"},
	{"COMMKEEN3", "KEEN", 2, 6, "A_Scream", "COMMKEEN4"},
	{"COMMKEEN4", "KEEN", 3, 6, "", "COMMKEEN5"},
	{"COMMKEEN5", "KEEN", 4, 6, "", "COMMKEEN6"},
	{"COMMKEEN6", "KEEN", 5, 6, "", "COMMKEEN7"},
	{"COMMKEEN7", "KEEN", 6, 6, "", "COMMKEEN8"},
	{"COMMKEEN8", "KEEN", 7, 6, "", "COMMKEEN9"},
	{"COMMKEEN9", "KEEN", 8, 6, "", "COMMKEEN10"},
	{"COMMKEEN10", "KEEN", 9, 6, "", "COMMKEEN11"},
	{"COMMKEEN11", "KEEN", 10, 6, "A_KeenDie", "COMMKEEN12"},
	{"COMMKEEN12", "KEEN", 11, -1, "", "NULL"},
	{"KEENPAIN", "KEEN", 12, 4, "", "KEENPAIN2"},
	{"KEENPAIN2", "KEEN", 12, 8, "A_Pain", "KEENSTND"},
	{"BRAIN", "BBRN", 0, -1, "", "NULL"},
	{"BRAIN_PAIN", "BBRN", 1, 36, "A_BrainPain", "BRAIN"},
	{"BRAIN_DIE1", "BBRN", 0, 100, "A_BrainScream", "BRAIN_DIE2"},
	{"BRAIN_DIE2", "BBRN", 0, 10, "", "BRAIN_DIE3"},
	{"BRAIN_DIE3", "BBRN", 0, 10, "", "BRAIN_DIE4"},
	{"BRAIN_DIE4", "BBRN", 0, -1, "A_BrainDie", "NULL"},
	{"BRAINEYE", "SSWV", 0, 10, "A_Look", "BRAINEYE"},
	{"BRAINEYESEE", "SSWV", 0, 181, "A_BrainAwake", "BRAINEYE1"},
	{"BRAINEYE1", "SSWV", 0, 150, "A_BrainSpit", "BRAINEYE1"},
	{"SPAWN1", "BOSF", fb | 0, 3, "A_SpawnSound", "SPAWN2"},
	{"SPAWN2", "BOSF", fb | 1, 3, "A_SpawnFly", "SPAWN3"},
	{"SPAWN3", "BOSF", fb | 2, 3, "A_SpawnFly", "SPAWN4"},
	{"SPAWN4", "BOSF", fb | 3, 3, "A_SpawnFly", "SPAWN1"},
	{"SPAWNFIRE1", "FIRE", fb | 0, 4, "A_Fire", "SPAWNFIRE2"},
	{"SPAWNFIRE2", "FIRE", fb | 1, 4, "A_Fire", "SPAWNFIRE3"},
	{"SPAWNFIRE3", "FIRE", fb | 2, 4, "A_Fire", "SPAWNFIRE4"},
	{"SPAWNFIRE4", "FIRE", fb | 3, 4, "A_Fire", "SPAWNFIRE5"},
	{"SPAWNFIRE5", "FIRE", fb | 4, 4, "A_Fire", "SPAWNFIRE6"},
	{"SPAWNFIRE6", "FIRE", fb | 5, 4, "A_Fire", "SPAWNFIRE7"},
	{"SPAWNFIRE7", "FIRE", fb | 6, 4, "A_Fire", "SPAWNFIRE8"},
	{"SPAWNFIRE8", "FIRE", fb | 7, 4, "A_Fire", "NULL"},
	{"BRAINEXPLODE1", "MISL", fb | 1, 10, "", "BRAINEXPLODE2"},
	{"BRAINEXPLODE2", "MISL", fb | 2, 10, "", "BRAINEXPLODE3"},
	{"BRAINEXPLODE3", "MISL", fb | 3, 10, "A_BrainExplode", "NULL"},
	{"ARM1", "ARM1", 0, 6, "", "ARM1A"},
	{"ARM1A", "ARM1", fb | 1, 7, "", "ARM1"},
	{"ARM2", "ARM2", 0, 6, "", "ARM2A"},
	{"ARM2A", "ARM2", fb | 1, 6, "", "ARM2"},
	{"BAR1", "BAR1", 0, 6, "", "BAR2"},
	{"BAR2", "BAR1", 1, 6, "", "BAR1"},
	{"BEXP", "BEXP", fb | 0, 5, "", "BEXP2"},
	{"BEXP2", "BEXP", fb | 1, 5, "A_Scream", "BEXP3"},
	{"BEXP3", "BEXP", fb | 2, 5, "", "BEXP4"},
	{"BEXP4", "BEXP", fb | 3, 10, "A_Explode", "BEXP5"},
	{"BEXP5", "BEXP", fb | 4, 10, "", "NULL"},
	{"BBAR1", "FCAN", fb | 0, 4, "", "BBAR2"},
	{"BBAR2", "FCAN", fb | 1, 4, "", "BBAR3"},
	{"BBAR3", "FCAN", fb | 2, 4, "", "BBAR1"},
	{"BON1", "BON1", 0, 6, "", "BON1A"},
	{"BON1A", "BON1", 1, 6, "", "BON1B"},
	{"BON1B", "BON1", 2, 6, "", "BON1C"},
	{"BON1C", "BON1", 3, 6, "", "BON1D"},
	{"BON1D", "BON1", 2, 6, "", "BON1E"},
	{"BON1E", "BON1", 1, 6, "", "BON1"},
	{"BON2", "BON2", 0, 6, "", "BON2A"},
	{"BON2A", "BON2", 1, 6, "", "BON2B"},
	{"BON2B", "BON2", 2, 6, "", "BON2C"},
	{"BON2C", "BON2", 3, 6, "", "BON2D"},
	{"BON2D", "BON2", 2, 6, "", "BON2E"},
	{"BON2E", "BON2", 1, 6, "", "BON2"},
	{"BKEY", "BKEY", 0, 10, "", "BKEY2"},
	{"BKEY2", "BKEY", fb | 1, 10, "", "BKEY"},
	{"RKEY", "RKEY", 0, 10, "", "RKEY2"},
	{"RKEY2", "RKEY", fb | 1, 10, "", "RKEY"},
	{"YKEY", "YKEY", 0, 10, "", "YKEY2"},
	{"YKEY2", "YKEY", fb | 1, 10, "", "YKEY"},
	{"BSKULL", "BSKU", 0, 10, "", "BSKULL2"},
	{"BSKULL2", "BSKU", fb | 1, 10, "", "BSKULL"},
	{"RSKULL", "RSKU", 0, 10, "", "RSKULL2"},
	{"RSKULL2", "RSKU", fb | 1, 10, "", "RSKULL"},
	{"YSKULL", "YSKU", 0, 10, "", "YSKULL2"},
	{"YSKULL2", "YSKU", fb | 1, 10, "", "YSKULL"},
	{"STIM", "STIM", 0, -1, "", "NULL"},
	{"MEDI", "MEDI", 0, -1, "", "NULL"},
	{"SOUL", "SOUL", fb | 0, 6, "", "SOUL2"},
	{"SOUL2", "SOUL", fb | 1, 6, "", "SOUL3"},
	{"SOUL3", "SOUL", fb | 2, 6, "", "SOUL4"},
	{"SOUL4", "SOUL", fb | 3, 6, "", "SOUL5"},
	{"SOUL5", "SOUL", fb | 2, 6, "", "SOUL6"},
	{"SOUL6", "SOUL", fb | 1, 6, "", "SOUL"},
	{"PINV", "PINV", fb | 0, 6, "", "PINV2"},
	{"PINV2", "PINV", fb | 1, 6, "", "PINV3"},
	{"PINV3", "PINV", fb | 2, 6, "", "PINV4"},
	{"PINV4", "PINV", fb | 3, 6, "", "PINV"},
	{"PSTR", "PSTR", fb | 0, -1, "", "NULL"},
	{"PINS", "PINS", fb | 0, 6, "", "PINS2"},
	{"PINS2", "PINS", fb | 1, 6, "", "PINS3"},
	{"PINS3", "PINS", fb | 2, 6, "", "PINS4"},
	{"PINS4", "PINS", fb | 3, 6, "", "PINS"},
	{"MEGA", "MEGA", fb | 0, 6, "", "MEGA2"},
	{"MEGA2", "MEGA", fb | 1, 6, "", "MEGA3"},
	{"MEGA3", "MEGA", fb | 2, 6, "", "MEGA4"},
	{"MEGA4", "MEGA", fb | 3, 6, "", "MEGA"},
	{"SUIT", "SUIT", fb | 0, -1, "", "NULL"},
	{"PMAP", "PMAP", fb | 0, 6, "", "PMAP2"},
	{"PMAP2", "PMAP", fb | 1, 6, "", "PMAP3"},
	{"PMAP3", "PMAP", fb | 2, 6, "", "PMAP4"},
	{"PMAP4", "PMAP", fb | 3, 6, "", "PMAP5"},
	{"PMAP5", "PMAP", fb | 2, 6, "", "PMAP6"},
	{"PMAP6", "PMAP", fb | 1, 6, "", "PMAP"},
	{"PVIS", "PVIS", fb | 0, 6, "", "PVIS2"},
	{"PVIS2", "PVIS", 1, 6, "", "PVIS"},
	{"CLIP", "CLIP", 0, -1, "", "NULL"},
	{"AMMO", "AMMO", 0, -1, "", "NULL"},
	{"ROCK", "ROCK", 0, -1, "", "NULL"},
	{"BROK", "BROK", 0, -1, "", "NULL"},
	{"CELL", "CELL", 0, -1, "", "NULL"},
	{"CELP", "CELP", 0, -1, "", "NULL"},
	{"SHEL", "SHEL", 0, -1, "", "NULL"},
	{"SBOX", "SBOX", 0, -1, "", "NULL"},
	{"BPAK", "BPAK", 0, -1, "", "NULL"},
	{"BFUG", "BFUG", 0, -1, "", "NULL"},
	{"MGUN", "MGUN", 0, -1, "", "NULL"},
	{"CSAW", "CSAW", 0, -1, "", "NULL"},
	{"LAUN", "LAUN", 0, -1, "", "NULL"},
	{"PLAS", "PLAS", 0, -1, "", "NULL"},
	{"SHOT", "SHOT", 0, -1, "", "NULL"},
	{"SHOT2", "SGN2", 0, -1, "", "NULL"},
	{"COLU", "COLU", fb | 0, -1, "", "NULL"},
	{"STALAG", "SMT2", 0, -1, "", "NULL"},
	{"BLOODYTWITCH", "GOR1", 0, 10, "", "BLOODYTWITCH2"},
	{"BLOODYTWITCH2", "GOR1", 1, 15, "", "BLOODYTWITCH3"},
	{"BLOODYTWITCH3", "GOR1", 2, 8, "", "BLOODYTWITCH4"},
	{"BLOODYTWITCH4", "GOR1", 1, 6, "", "BLOODYTWITCH"},
	{"DEADTORSO", "PLAY", 13, -1, "", "NULL"},
	{"DEADBOTTOM", "PLAY", 18, -1, "", "NULL"},
	{"HEADSONSTICK", "POL2", 0, -1, "", "NULL"},
	{"GIBS", "POL5", 0, -1, "", "NULL"},
	{"HEADONASTICK", "POL4", 0, -1, "", "NULL"},
	{"HEADCANDLES", "POL3", fb | 0, 6, "", "HEADCANDLES2"},
	{"HEADCANDLES2", "POL3", fb | 1, 6, "", "HEADCANDLES"},
	{"DEADSTICK", "POL1", 0, -1, "", "NULL"},
	{"LIVESTICK", "POL6", 0, 6, "", "LIVESTICK2"},
	{"LIVESTICK2", "POL6", 1, 8, "", "LIVESTICK"},
	{"MEAT2", "GOR2", 0, -1, "", "NULL"},
	{"MEAT3", "GOR3", 0, -1, "", "NULL"},
	{"MEAT4", "GOR4", 0, -1, "", "NULL"},
	{"MEAT5", "GOR5", 0, -1, "", "NULL"},
	{"STALAGTITE", "SMIT", 0, -1, "", "NULL"},
	{"TALLGRNCOL", "COL1", 0, -1, "", "NULL"},
	{"SHRTGRNCOL", "COL2", 0, -1, "", "NULL"},
	{"TALLREDCOL", "COL3", 0, -1, "", "NULL"},
	{"SHRTREDCOL", "COL4", 0, -1, "", "NULL"},
	{"CANDLESTIK", "CAND", fb | 0, -1, "", "NULL"},
	{"CANDELABRA", "CBRA", fb | 0, -1, "", "NULL"},
	{"SKULLCOL", "COL6", 0, -1, "", "NULL"},
	{"TORCHTREE", "TRE1", 0, -1, "", "NULL"},
	{"BIGTREE", "TRE2", 0, -1, "", "NULL"},
	{"TECHPILLAR", "ELEC", 0, -1, "", "NULL"},
	{"EVILEYE", "CEYE", fb | 0, 6, "", "EVILEYE2"},
	{"EVILEYE2", "CEYE", fb | 1, 6, "", "EVILEYE3"},
	{"EVILEYE3", "CEYE", fb | 2, 6, "", "EVILEYE4"},
	{"EVILEYE4", "CEYE", fb | 1, 6, "", "EVILEYE"},
	{"FLOATSKULL", "FSKU", fb | 0, 6, "", "FLOATSKULL2"},
	{"FLOATSKULL2", "FSKU", fb | 1, 6, "", "FLOATSKULL3"},
	{"FLOATSKULL3", "FSKU", fb | 2, 6, "", "FLOATSKULL"},
	{"HEARTCOL", "COL5", 0, 14, "", "HEARTCOL2"},
	{"HEARTCOL2", "COL5", 1, 14, "", "HEARTCOL"},
	{"BLUETORCH", "TBLU", fb | 0, 4, "", "BLUETORCH2"},
	{"BLUETORCH2", "TBLU", fb | 1, 4, "", "BLUETORCH3"},
	{"BLUETORCH3", "TBLU", fb | 2, 4, "", "BLUETORCH4"},
	{"BLUETORCH4", "TBLU", fb | 3, 4, "", "BLUETORCH"},
	{"GREENTORCH", "TGRN", fb | 0, 4, "", "GREENTORCH2"},
	{"GREENTORCH2", "TGRN", fb | 1, 4, "", "GREENTORCH3"},
	{"GREENTORCH3", "TGRN", fb | 2, 4, "", "GREENTORCH4"},
	{"GREENTORCH4", "TGRN", fb | 3, 4, "", "GREENTORCH"},
	{"REDTORCH", "TRED", fb | 0, 4, "", "REDTORCH2"},
	{"REDTORCH2", "TRED", fb | 1, 4, "", "REDTORCH3"},
	{"REDTORCH3", "TRED", fb | 2, 4, "", "REDTORCH4"},
	{"REDTORCH4", "TRED", fb | 3, 4, "", "REDTORCH"},
	{"BTORCHSHRT", "SMBT", fb | 0, 4, "", "BTORCHSHRT2"},
	{"BTORCHSHRT2", "SMBT", fb | 1, 4, "", "BTORCHSHRT3"},
	{"BTORCHSHRT3", "SMBT", fb | 2, 4, "", "BTORCHSHRT4"},
	{"BTORCHSHRT4", "SMBT", fb | 3, 4, "", "BTORCHSHRT"},
	{"GTORCHSHRT", "SMGT", fb | 0, 4, "", "GTORCHSHRT2"},
	{"GTORCHSHRT2", "SMGT", fb | 1, 4, "", "GTORCHSHRT3"},
	{"GTORCHSHRT3", "SMGT", fb | 2, 4, "", "GTORCHSHRT4"},
	{"GTORCHSHRT4", "SMGT", fb | 3, 4, "", "GTORCHSHRT"},
	{"RTORCHSHRT", "SMRT", fb | 0, 4, "", "RTORCHSHRT2"},
	{"RTORCHSHRT2", "SMRT", fb | 1, 4, "", "RTORCHSHRT3"},
	{"RTORCHSHRT3", "SMRT", fb | 2, 4, "", "RTORCHSHRT4"},
	{"RTORCHSHRT4", "SMRT", fb | 3, 4, "", "RTORCHSHRT"},
	{"HANGNOGUTS", "HDB1", 0, -1, "", "NULL"},
	{"HANGBNOBRAIN", "HDB2", 0, -1, "", "NULL"},
	{"HANGTLOOKDN", "HDB3", 0, -1, "", "NULL"},
	{"HANGTSKULL", "HDB4", 0, -1, "", "NULL"},
	{"HANGTLOOKUP", "HDB5", 0, -1, "", "NULL"},
	{"HANGTNOBRAIN", "HDB6", 0, -1, "", "NULL"},
	{"COLONGIBS", "POB1", 0, -1, "", "NULL"},
	{"SMALLPOOL", "POB2", 0, -1, "", "NULL"},
	{"BRAINSTEM", "BRS1", 0, -1, "", "NULL"},
	{"TECHLAMP", "TLMP", fb | 0, 4, "", "TECHLAMP2"},
	{"TECHLAMP2", "TLMP", fb | 1, 4, "", "TECHLAMP3"},
	{"TECHLAMP3", "TLMP", fb | 2, 4, "", "TECHLAMP4"},
	{"TECHLAMP4", "TLMP", fb | 3, 4, "", "TECHLAMP"},
	{"TECH2LAMP", "TLP2", fb | 0, 4, "", "TECH2LAMP2"},
	{"TECH2LAMP2", "TLP2", fb | 1, 4, "", "TECH2LAMP3"},
	{"TECH2LAMP3", "TLP2", fb | 2, 4, "", "TECH2LAMP4"},
	{"TECH2LAMP4", "TLP2", fb | 3, 4, "", "TECH2LAMP"},
}
