package colgroup

import (
	"sort"
	"strconv"
	"strings"
)

// Rule table construction helpers. Templates use "{}" as the parameter
// placeholder, substituted into both map keys and column names.

func group(alias string, schema Schema) Rule {
	return Rule{Alias: alias, Schema: schema}
}

// cols builds a Seq of plain column leaves.
func cols(names ...string) Seq {
	seq := make(Seq, len(names))
	for i, name := range names {
		seq[i] = Leaf(name)
	}
	return seq
}

// numbered builds a Seq of leaves from a template applied to from..to.
func numbered(template string, from, to int) Seq {
	seq := make(Seq, 0, to-from+1)
	for i := from; i <= to; i++ {
		seq = append(seq, Leaf(strings.ReplaceAll(template, "{}", strconv.Itoa(i))))
	}
	return seq
}

// ints builds the parameter list "from".."to" inclusive.
func ints(from, to int) []string {
	params := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		params = append(params, strconv.Itoa(i))
	}
	return params
}

// expand generates one rule per parameter, substituting the parameter into
// the alias and the schema templates.
func expand(params []string, alias string, schema Schema) []Rule {
	rules := make([]Rule, len(params))
	for i, p := range params {
		rules[i] = Rule{
			Alias:  strings.ReplaceAll(alias, "{}", p),
			Schema: formatSchema(schema, p),
		}
	}
	return rules
}

// Vendor names used in column names of Armor.txt, Misc.txt, Weapons.txt
var vendors = []string{
	"Akara", "Alkor", "Asheara", "Cain", "Charsi", "Drehya", "Drognan",
	"Elzix", "Fara", "Gheed", "Halbu", "Hralti", "Jamella", "Larzuk",
	"Lysander", "Malah", "Ormus",
}

// aiGroup builds the AI column group for one difficulty suffix
// ("", "(N)" or "(H)"): delay, distance and the eight aip parameters.
func aiGroup(alias, suffix string) Rule {
	m := Map{
		{"delay", Leaf("AIDel" + suffix)},
		{"dist", Leaf("AIDist" + suffix)},
	}
	for i := 1; i <= 8; i++ {
		n := strconv.Itoa(i)
		m = append(m, Entry{"p" + n, Leaf("aip" + n + suffix)})
	}
	return Rule{Alias: alias, Schema: m}
}

// resGroup builds a six-element resistance group for one difficulty suffix.
func resGroup(alias, suffix string) Rule {
	return Rule{Alias: alias, Schema: Map{
		{"phys", Leaf("ResDm" + suffix)},
		{"mag", Leaf("ResMa" + suffix)},
		{"fire", Leaf("ResFi" + suffix)},
		{"ltng", Leaf("ResLi" + suffix)},
		{"cold", Leaf("ResCo" + suffix)},
		{"pois", Leaf("ResPo" + suffix)},
	}}
}

// objectModes maps Objects.txt animation mode keys to their column indices.
func objectModeMap() Map {
	modes := []string{"NU", "OP", "ON", "S1", "S2", "S3", "S4", "S5"}
	m := make(Map, len(modes))
	for i, mode := range modes {
		m[i] = Entry{mode, Leaf("{}" + strconv.Itoa(i))}
	}
	return m
}

// defaultRules is the built-in rule table, sorted at init by descending
// member-column count; declaration order is the tiebreak, so larger and
// earlier groups claim their columns first.
var defaultRules = buildRules()

// Default returns the built-in column group rules. The returned slice is
// shared and must not be modified.
func Default() []Rule {
	return defaultRules
}

func buildRules() []Rule {
	var rules []Rule
	add := func(rs ...Rule) { rules = append(rules, rs...) }

	// Armor.txt, Misc.txt, Weapons.txt
	add(group("__AC", Map{{"min", Leaf("MinAC")}, {"max", Leaf("MaxAC")}}))
	add(expand(ints(1, 3), "__Stat{}", Map{{"stat", Leaf("stat{}")}, {"calc", Leaf("calc{}")}})...)
	add(group("__Damage", Map{{"min", Leaf("MinDam")}, {"max", Leaf("MaxDam")}}))
	add(group("__2HandDam", Map{{"min", Leaf("2HandMinDam")}, {"max", Leaf("2HandMaxDam")}}))
	add(group("__MisDam", Map{{"min", Leaf("MinMisDam")}, {"max", Leaf("MaxMisDam")}}))
	add(group("__Stack", Map{{"min", Leaf("MinStack")}, {"max", Leaf("MaxStack")}}))
	add(expand(vendors, "__{}MinMax", Map{
		{"Min", Leaf("{}Min")},
		{"Max", Leaf("{}Max")},
		{"MagicMin", Leaf("{}MagicMin")},
		{"MagicMax", Leaf("{}MagicMax")},
		{"MagicLvl", Leaf("{}MagicLvl")},
	})...)
	add(group("__Code", Map{{"normal", Leaf("NormCode")}, {"uber", Leaf("UberCode")}, {"ultra", Leaf("UltraCode")}}))
	add(group("__wClass", Map{{"1hand", Leaf("wClass")}, {"2hand", Leaf("2HandedWClass")}}))
	add(group("__Inv", Map{{"width", Leaf("InvWidth")}, {"height", Leaf("InvHeight")}}))
	add(group("__Upgrades", Map{{"nightmare", Leaf("NightmareUpgrade")}, {"hell", Leaf("HellUpgrade")}}))

	// AutoMagic.txt, MagicPrefix.txt, MagicSuffix.txt
	add(expand(ints(1, 3), "__Mod{}", Map{
		{"prop", Leaf("Mod{}Code")},
		{"param", Leaf("Mod{}Param")},
		{"min", Leaf("Mod{}Min")},
		{"max", Leaf("Mod{}Max")},
	})...)
	add(group("--IType1-7", numbered("IType{}", 1, 7)))
	add(group("--EType1-3", numbered("EType{}", 1, 3)))
	add(group("--EType1-5", numbered("EType{}", 1, 5))) // For MagicPrefix.txt
	add(group("__Cost", Map{{"divide", Leaf("Divide")}, {"multiply", Leaf("Multiply")}, {"add", Leaf("Add")}}))

	// CharStats.txt
	add(expand(ints(1, 10), "__Item{}", Map{
		{"code", Leaf("Item{}")},
		{"loc", Leaf("Item{}Loc")},
		{"count", Leaf("Item{}Count")},
	})...)

	// CubeMain.txt
	add(expand(ints(1, 5), "__Mod{}", Map{
		{"mod", Leaf("mod {}")},
		{"chance", Leaf("mod {} chance")},
		{"param", Leaf("mod {} param")},
		{"min", Leaf("mod {} min")},
		{"max", Leaf("mod {} max")},
	})...)
	add(expand(ints(1, 5), "__B_Mod{}", Map{
		{"mod", Leaf("b mod {}")},
		{"chance", Leaf("b mod {} chance")},
		{"param", Leaf("b mod {} param")},
		{"min", Leaf("b mod {} min")},
		{"max", Leaf("b mod {} max")},
	})...)
	add(expand(ints(1, 5), "__C_Mod{}", Map{
		{"mod", Leaf("c mod {}")},
		{"chance", Leaf("c mod {} chance")},
		{"param", Leaf("c mod {} param")},
		{"min", Leaf("c mod {} min")},
		{"max", Leaf("c mod {} max")},
	})...)

	// Gems.txt
	add(expand(ints(1, 3), "__WeaponMod{}", Map{
		{"prop", Leaf("WeaponMod{}Code")},
		{"param", Leaf("WeaponMod{}Param")},
		{"min", Leaf("WeaponMod{}Min")},
		{"max", Leaf("WeaponMod{}Max")},
	})...)
	add(expand(ints(1, 3), "__HelmMod{}", Map{
		{"prop", Leaf("HelmMod{}Code")},
		{"param", Leaf("HelmMod{}Param")},
		{"min", Leaf("HelmMod{}Min")},
		{"max", Leaf("HelmMod{}Max")},
	})...)
	add(expand(ints(1, 3), "__ShieldMod{}", Map{
		{"prop", Leaf("ShieldMod{}Code")},
		{"param", Leaf("ShieldMod{}Param")},
		{"min", Leaf("ShieldMod{}Min")},
		{"max", Leaf("ShieldMod{}Max")},
	})...)

	// Hireling.txt
	add(group("__Name", Map{{"first", Leaf("NameFirst")}, {"last", Leaf("NameLast")}}))
	add(expand([]string{"HP", "Str", "Dex", "AR", "Resist"}, "__{}",
		Map{{"base", Leaf("{}")}, {"/lvl", Leaf("{}/Lvl")}})...)
	add(group("__Defense", Map{{"base", Leaf("Defense")}, {"/lvl", Leaf("Def/Lvl")}}))
	add(group("__Damage", Map{{"min", Leaf("Dmg-Min")}, {"max", Leaf("Dmg-Max")}, {"/lvl", Leaf("Dmg/Lvl")}}))
	add(expand(ints(1, 6), "__Skill{}", Map{
		{"name", Leaf("Skill{}")},
		{"mode", Leaf("Mode{}")},
		{"chance", Leaf("Chance{}")},
		{"chance/lvl", Leaf("ChancePerLvl{}")},
		{"level", Leaf("Level{}")},
		{"level/lvl", Leaf("LvlPerLvl{}")},
	})...)

	// Inventory.txt
	add(group("__Inv", Map{
		{"left", Leaf("InvLeft")},
		{"right", Leaf("InvRight")},
		{"top", Leaf("InvTop")},
		{"bottom", Leaf("InvBottom")},
	}))
	add(group("__Grid", Map{
		{"left", Leaf("GridLeft")},
		{"right", Leaf("GridRight")},
		{"top", Leaf("GridTop")},
		{"bottom", Leaf("GridBottom")},
		{"x", Leaf("GridX")},
		{"y", Leaf("GridY")},
	}))
	add(group("__GridBox", Map{{"width", Leaf("GridBoxWidth")}, {"height", Leaf("GridBoxHeight")}}))
	add(expand(
		[]string{"Inv", "rArm", "Torso", "lArm", "Head", "Neck", "rHand", "lHand", "Belt", "Feet", "Gloves"},
		"__{}",
		Map{
			{"left", Leaf("{}Left")},
			{"right", Leaf("{}Right")},
			{"top", Leaf("{}Top")},
			{"bottom", Leaf("{}Bottom")},
			{"width", Leaf("{}Width")},
			{"height", Leaf("{}Height")},
		})...)

	// ItemTypes.txt
	add(group("--BodyLoc1-2", cols("BodyLoc1", "BodyLoc2")))
	add(group("__MaxSock", Map{{"L1", Leaf("MaxSock1")}, {"L25", Leaf("MaxSock25")}, {"L40", Leaf("MaxSock40")}}))

	// Levels.txt
	add(group("--Size-RNH", Seq{
		Map{{"x", Leaf("SizeX")}, {"y", Leaf("SizeY")}},
		Map{{"x", Leaf("SizeX(N)")}, {"y", Leaf("SizeY(N)")}},
		Map{{"x", Leaf("SizeX(H)")}, {"y", Leaf("SizeY(H)")}},
	}))
	add(group("__Offset", Map{{"x", Leaf("OffsetX")}, {"y", Leaf("OffsetY")}}))
	add(expand(ints(0, 7), "__VizAndWarp{}", Map{{"vis", Leaf("Vis{}")}, {"warp", Leaf("Warp{}")}})...)
	add(group("--MonLvl-123", cols("MonLvl1", "MonLvl2", "MonLvl3")))
	add(group("--MonLvlEx-123", cols("MonLvl1Ex", "MonLvl2Ex", "MonLvl3Ex")))
	add(group("--MonDen-RNH", cols("MonDen", "MonDen(N)", "MonDen(H)")))
	add(group("--MonU-RNH", Seq{
		Map{{"min", Leaf("MonUMin")}, {"max", Leaf("MonUMax")}},
		Map{{"min", Leaf("MonUMin(N)")}, {"max", Leaf("MonUMax(N)")}},
		Map{{"min", Leaf("MonUMin(H)")}, {"max", Leaf("MonUMax(H)")}},
	}))
	add(expand(ints(0, 7), "__Obj{}", Map{{"grp", Leaf("ObjGrp{}")}, {"prb", Leaf("ObjPrb{}")}})...)

	// LvlMaze.txt
	add(group("--Rooms-RNH", cols("Rooms", "Rooms(N)", "Rooms(H)")))
	add(group("__Size", Map{{"x", Leaf("SizeX")}, {"y", Leaf("SizeY")}})) // Also in LvlPrest.txt

	// Missiles.txt
	add(group("__pDoFunc", Map{{"srv", Leaf("pSrvDoFunc")}, {"clt", Leaf("pCltDoFunc")}}))
	add(group("__pHitFunc", Map{{"srv", Leaf("pSrvHitFunc")}, {"clt", Leaf("pCltHitFunc")}}))
	add(expand(ints(1, 3), "__SubMissile{}", Map{{"srv", Leaf("SubMissile{}")}, {"clt", Leaf("CltSubMissile{}")}})...)
	add(expand(ints(1, 4), "__HitSubMissile{}", Map{{"srv", Leaf("HitSubMissile{}")}, {"clt", Leaf("CltHitSubMissile{}")}})...)
	add(expand(ints(1, 5), "__Param{}", Map{{"param", Leaf("Param{}")}, {"desc", Leaf("*param{} desc")}})...)
	add(expand(ints(1, 5), "__CltParam{}", Map{{"clt", Leaf("CltParam{}")}, {"desc", Leaf("*client param{} desc")}})...)
	add(expand(ints(1, 3), "__SrvHitParam{}", Map{{"param", Leaf("sHitPar{}")}, {"desc", Leaf("*server hit param{} desc")}})...)
	add(expand(ints(1, 3), "__CltHitParam{}", Map{{"param", Leaf("cHitPar{}")}, {"desc", Leaf("*client hit param{} desc")}})...)
	add(expand(ints(1, 2), "__DamageParam{}", Map{{"param", Leaf("dParam{}")}, {"desc", Leaf("*damage param{} desc")}})...)
	add(group("--MinDamage0-5", cols("MinDamage", "MinLevDam1", "MinLevDam2", "MinLevDam3", "MinLevDam4", "MinLevDam5")))
	add(group("--MaxDamage0-5", cols("MaxDamage", "MaxLevDam1", "MaxLevDam2", "MaxLevDam3", "MaxLevDam4", "MaxLevDam5")))
	add(group("--MinE0-5", cols("EMin", "MinELev1", "MinELev2", "MinELev3", "MinELev4", "MinELev5")))
	add(group("--MaxE0-5", cols("EMax", "MaxELev1", "MaxELev2", "MaxELev3", "MaxELev4", "MaxELev5")))
	add(group("--ELen0-3", cols("ELen", "ELevLen1", "ELevLen2", "ELevLen3")))
	add(group("__RGB", Map{{"red", Leaf("Red")}, {"green", Leaf("Green")}, {"blue", Leaf("Blue")}}))

	// MonProp.txt
	add(expand(ints(1, 6), "--MinMax{}", Seq{Leaf("Min{}"), Leaf("Max{}")})...)
	add(expand(ints(1, 6), "--MinMax{} (N)", Seq{Leaf("Min{} (N)"), Leaf("Max{} (N)")})...)
	add(expand(ints(1, 6), "--MinMax{} (H)", Seq{Leaf("Min{} (H)"), Leaf("Max{} (H)")})...)

	// MonStats.txt
	add(group("__Spawn", Map{
		{"place", Leaf("PlaceSpawn")},
		{"x", Leaf("SpawnX")},
		{"y", Leaf("SpawnY")},
		{"mode", Leaf("SpawnMode")},
	}))
	add(group("__Party", Map{{"min", Leaf("PartyMin")}, {"max", Leaf("PartyMax")}}))
	add(group("__Grp", Map{{"min", Leaf("MinGrp")}, {"max", Leaf("MaxGrp")}}))
	add(expand([]string{"Level", "Drain", "ColdEffect", "ToBlock", "AC", "Exp"},
		"--{}-RNH", Seq{Leaf("{}"), Leaf("{}(N)"), Leaf("{}(H)")})...)
	add(aiGroup("__AI_R", ""))
	add(aiGroup("__AI_N", "(N)"))
	add(aiGroup("__AI_H", "(H)"))
	add(expand(ints(1, 8), "__Skill{}", Map{
		{"name", Leaf("Skill{}")},
		{"mode", Leaf("Sk{}Mode")},
		{"level", Leaf("Sk{}Lvl")},
	})...)
	add(resGroup("__Res_R", ""))
	add(resGroup("__Res_N", "(N)"))
	add(resGroup("__Res_H", "(H)"))
	add(group("--HP-RNH", Seq{
		Map{{"min", Leaf("MinHP")}, {"max", Leaf("MaxHP")}},
		Map{{"min", Leaf("MinHP(N)")}, {"max", Leaf("MaxHP(N)")}},
		Map{{"min", Leaf("MinHP(H)")}, {"max", Leaf("MaxHP(H)")}},
	}))
	add(expand([]string{"A1", "A2", "S1"}, "--{}-RNH", Seq{
		Map{{"min", Leaf("{}MinD")}, {"max", Leaf("{}MaxD")}, {"TH", Leaf("{}TH")}},
		Map{{"min", Leaf("{}MinD(N)")}, {"max", Leaf("{}MaxD(N)")}, {"TH", Leaf("{}TH(N)")}},
		Map{{"min", Leaf("{}MinD(H)")}, {"max", Leaf("{}MaxD(H)")}, {"TH", Leaf("{}TH(H)")}},
	})...)
	add(expand([]string{"El1", "El2", "El3"}, "__{}",
		Map{{"mode", Leaf("{}Mode")}, {"type", Leaf("{}Type")}})...)
	add(expand([]string{"El1", "El2", "El3"}, "--{}-RNH", Seq{
		Map{{"pct", Leaf("{}Pct")}, {"min", Leaf("{}MinD")}, {"max", Leaf("{}MaxD")}, {"dur", Leaf("{}Dur")}},
		Map{{"pct", Leaf("{}Pct(N)")}, {"min", Leaf("{}MinD(N)")}, {"max", Leaf("{}MaxD(N)")}, {"dur", Leaf("{}Dur(N)")}},
		Map{{"pct", Leaf("{}Pct(H)")}, {"min", Leaf("{}MinD(H)")}, {"max", Leaf("{}MaxD(H)")}, {"dur", Leaf("{}Dur(H)")}},
	})...)
	add(group("--TreasureClass-R", numbered("TreasureClass{}", 1, 4)))
	add(group("--TreasureClass-N", numbered("TreasureClass{}(N)", 1, 4)))
	add(group("--TreasureClass-H", numbered("TreasureClass{}(H)", 1, 4)))

	// MonStats2.txt
	add(group("__Light", Map{{"R", Leaf("Light-R")}, {"G", Leaf("Light-G")}, {"B", Leaf("Light-B")}}))
	add(group("--uTrans-RNH", cols("uTrans", "uTrans(N)", "uTrans(H)")))
	add(expand([]string{"HD", "TR", "LG", "RA", "LA", "RH", "SH"}, "__{}",
		Map{{"on", Leaf("{}")}, {"v", Leaf("{}v")}})...)
	add(expand([]string{"DT", "NU", "WL", "GH", "BL", "DD", "KB", "SQ", "RN"}, "__{}",
		Map{{"m", Leaf("m{}")}, {"d", Leaf("d{}")}})...)
	add(expand([]string{"A1", "A2", "SC", "S3", "S4"}, "__{}",
		Map{{"m", Leaf("m{}")}, {"d", Leaf("d{}")}, {"mv", Leaf("{}mv")}})...)
	add(expand([]string{"S1", "S2"}, "__{}",
		Map{{"on", Leaf("{}")}, {"v", Leaf("{}v")}, {"m", Leaf("m{}")}, {"d", Leaf("d{}")}, {"mv", Leaf("{}mv")}})...)
	add(group("__ht", Map{
		{"left", Leaf("htLeft")},
		{"top", Leaf("htTop")},
		{"width", Leaf("htWidth")},
		{"height", Leaf("htHeight")},
	}))

	// Objects.txt
	add(group("__nTgt", Map{
		{"fx", Leaf("nTgtFX")},
		{"fy", Leaf("nTgtFY")},
		{"bx", Leaf("nTgtBX")},
		{"by", Leaf("nTgtBY")},
	}))
	add(expand([]string{"Offset", "Space"}, "--XY{}", Seq{Leaf("X{}"), Leaf("Y{}")})...)
	add(expand(
		[]string{"Selectable", "FrameCnt", "FrameDelta", "CycleAnim", "Lit", "BlocksLight", "HasCollision", "Start", "OrderFlag", "Mode", "Parm"},
		"__{}", objectModeMap())...)
	add(group("__Selectable", Map{{"NU", Leaf("Selectable0")}, {"OP", Leaf("Selectable1")}}))
	add(group("__FrameCnt", Map{{"NU", Leaf("FrameCnt0")}, {"OP", Leaf("FrameCnt1")}}))
	add(group("__Box", Map{
		{"left", Leaf("Left")},
		{"top", Leaf("Top")},
		{"width", Leaf("Width")},
		{"height", Leaf("Height")},
	}))

	// Runes.txt
	add(group("--IType1-6", numbered("IType{}", 1, 6)))
	add(group("--Rune1-6", numbered("Rune{}", 1, 6)))
	add(expand(ints(1, 7), "__T1_{}", Map{
		{"prop", Leaf("T1Code{}")},
		{"param", Leaf("T1Param{}")},
		{"min", Leaf("T1Min{}")},
		{"max", Leaf("T1Max{}")},
	})...)

	// Sets.txt
	add(expand(ints(2, 5), "__P{}A", Map{
		{"prop", Leaf("pCode{}A")},
		{"param", Leaf("pParam{}A")},
		{"min", Leaf("pMin{}A")},
		{"max", Leaf("pMax{}A")},
	})...)
	add(expand(ints(2, 5), "__P{}B", Map{
		{"prop", Leaf("pCode{}B")},
		{"param", Leaf("pParam{}B")},
		{"min", Leaf("pMin{}B")},
		{"max", Leaf("pMax{}B")},
	})...)
	add(expand(ints(1, 8), "__F{}", Map{
		{"prop", Leaf("fCode{}")},
		{"param", Leaf("fParam{}")},
		{"min", Leaf("fMin{}")},
		{"max", Leaf("fMax{}")},
	})...)

	// SetItems.txt
	add(expand(ints(1, 5), "__aProp{}A", Map{
		{"prop", Leaf("aProp{}A")},
		{"param", Leaf("aPar{}A")},
		{"min", Leaf("aMin{}A")},
		{"max", Leaf("aMax{}A")},
	})...)
	add(expand(ints(1, 5), "__aProp{}B", Map{
		{"prop", Leaf("aProp{}B")},
		{"param", Leaf("aPar{}B")},
		{"min", Leaf("aMin{}B")},
		{"max", Leaf("aMax{}B")},
	})...)

	// Skills.txt
	add(group("__StartFunc", Map{{"srv", Leaf("SrvStFunc")}, {"clt", Leaf("CltStFunc")}}))
	add(group("__DoFunc", Map{{"srv", Leaf("SrvDoFunc")}, {"clt", Leaf("CltDoFunc")}}))
	add(expand([]string{"", "A", "B", "C"}, "__Missile{}",
		Map{{"srv", Leaf("SrvMissile{}")}, {"clt", Leaf("CltMissile{}")}})...)
	// No matching server-side missile field, but added for consistency's sake
	add(group("__MissileD", Map{{"clt", Leaf("CltMissileD")}}))
	add(expand(ints(1, 6), "__AuraStat{}", Map{{"stat", Leaf("AuraStat{}")}, {"calc", Leaf("AuraStatCalc{}")}})...)
	add(expand(ints(1, 6), "__PassiveStat{}", Map{{"stat", Leaf("PassiveStat{}")}, {"calc", Leaf("PassiveCalc{}")}})...)
	add(expand(ints(1, 3), "__AuraEvent{}", Map{{"event", Leaf("AuraEvent{}")}, {"func", Leaf("AuraEventFunc{}")}})...)
	add(group("__AuraTargetEvent", Map{{"event", Leaf("AuraTgtEvent")}, {"func", Leaf("AuraTgtEventFunc")}}))
	add(group("__PassiveEvent", Map{{"event", Leaf("PassiveEvent")}, {"func", Leaf("PassiveEventFunc")}}))
	add(expand(ints(1, 8), "__Param{}", Map{{"param", Leaf("Param{}")}, {"desc", Leaf("*Param{} Description")}})...)
	add(group("--MinDam0-5", cols("MinDam", "MinLevDam1", "MinLevDam2", "MinLevDam3", "MinLevDam4", "MinLevDam5")))
	add(group("--MaxDam0-5", cols("MaxDam", "MaxLevDam1", "MaxLevDam2", "MaxLevDam3", "MaxLevDam4", "MaxLevDam5")))
	add(group("--EMin0-5", cols("EMin", "EMinLev1", "EMinLev2", "EMinLev3", "EMinLev4", "EMinLev5")))
	add(group("--EMax0-5", cols("EMax", "EMaxLev1", "EMaxLev2", "EMaxLev3", "EMaxLev4", "EMaxLev5")))
	add(group("__Cost", Map{{"multiply", Leaf("cost mult")}, {"add", Leaf("cost add")}}))

	// SkillDesc.txt
	add(group("__SkillPage", Map{{"page", Leaf("SkillPage")}, {"row", Leaf("SkillRow")}, {"column", Leaf("SkillColumn")}}))

	// TreasureClassEx.txt
	add(expand(ints(1, 10), "__Item{}", Map{{"code", Leaf("Item{}")}, {"prob", Leaf("Prob{}")}})...)

	// UniqueItems.txt
	add(expand(ints(1, 12), "__Prop{}", Map{
		{"prop", Leaf("Prop{}")},
		{"param", Leaf("Par{}")},
		{"min", Leaf("Min{}")},
		{"max", Leaf("Max{}")},
	})...)

	// Larger groups must claim their columns before smaller overlapping
	// ones; stable sort keeps declaration order as the tiebreak.
	counts := make([]int, len(rules))
	for i, r := range rules {
		counts[i] = len(r.Members())
	}
	indices := make([]int, len(rules))
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return counts[indices[a]] > counts[indices[b]]
	})
	sorted := make([]Rule, len(rules))
	for i, idx := range indices {
		sorted[i] = rules[idx]
	}
	return sorted
}
