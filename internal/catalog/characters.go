package catalog

import "kanjiquest/internal/models"

var characters = []models.CharacterDescriptor{
	// animals
	{ID: "char_001", Name: "こぎつね", Emoji: "🦊", Rarity: models.RarityCommon, Type: "animal",
		Description: "もりに すむ ちいさな きつね。かんじが だいすき！",
		EvolutionStage: 1, EvolutionTo: "char_002", EvolveLevel: 5, EvolveFriend: 30},
	{ID: "char_002", Name: "きつね", Emoji: "🦊", Rarity: models.RarityUncommon, Type: "animal",
		Description: "せいちょうした きつね。もっと かんじを おぼえたい！",
		EvolutionStage: 2, EvolutionFrom: "char_001", EvolutionTo: "char_003", EvolveLevel: 15, EvolveFriend: 70},
	{ID: "char_003", Name: "きゅうびのきつね", Emoji: "🦊", Rarity: models.RarityLegendary, Type: "mythical",
		Description: "でんせつの きゅうびきつね。すべての かんじを しっている！",
		EvolutionStage: 3, EvolutionFrom: "char_002"},
	{ID: "char_004", Name: "こねこ", Emoji: "🐱", Rarity: models.RarityCommon, Type: "animal",
		Description: "のんびりやの ねこ。ひらがなは とくい！",
		EvolutionStage: 1, EvolutionTo: "char_005", EvolveLevel: 5, EvolveFriend: 30},
	{ID: "char_005", Name: "ねこ", Emoji: "🐱", Rarity: models.RarityUncommon, Type: "animal",
		Description: "おとなに なった ねこ。かんじも すこし よめるよ！",
		EvolutionStage: 2, EvolutionFrom: "char_004"},
	{ID: "char_006", Name: "こいぬ", Emoji: "🐶", Rarity: models.RarityCommon, Type: "animal",
		Description: "げんきいっぱいの いぬ。いっしょに べんきょう しよう！",
		EvolutionStage: 1, EvolutionTo: "char_007", EvolveLevel: 5, EvolveFriend: 30},
	{ID: "char_007", Name: "いぬ", Emoji: "🐶", Rarity: models.RarityUncommon, Type: "animal",
		Description: "りこうな いぬ。かんじを どんどん おぼえるよ！",
		EvolutionStage: 2, EvolutionFrom: "char_006"},
	{ID: "char_008", Name: "うさぎ", Emoji: "🐰", Rarity: models.RarityCommon, Type: "animal",
		Description: "ぴょんぴょん はねる うさぎ。かんじが すき！", EvolutionStage: 1},
	{ID: "char_009", Name: "くま", Emoji: "🐻", Rarity: models.RarityCommon, Type: "animal",
		Description: "やさしい くま。ゆっくり かんじを おぼえるよ。", EvolutionStage: 1},
	{ID: "char_010", Name: "ぱんだ", Emoji: "🐼", Rarity: models.RarityRare, Type: "animal",
		Description: "めずらしい ぱんだ。ちからもちで かしこい！", EvolutionStage: 1},

	// spirits
	{ID: "char_011", Name: "ひのせいれい", Emoji: "🔥", Rarity: models.RarityUncommon, Type: "element",
		Description: "ほのおの ちからを もつ せいれい。あつい！", EvolutionStage: 1},
	{ID: "char_012", Name: "みずのせいれい", Emoji: "💧", Rarity: models.RarityUncommon, Type: "element",
		Description: "みずの ちからを もつ せいれい。すずしい！", EvolutionStage: 1},
	{ID: "char_013", Name: "かぜのせいれい", Emoji: "💨", Rarity: models.RarityUncommon, Type: "element",
		Description: "かぜの ちからを もつ せいれい。かるやか！", EvolutionStage: 1},
	{ID: "char_014", Name: "つちのせいれい", Emoji: "⛰️", Rarity: models.RarityUncommon, Type: "element",
		Description: "だいちの ちからを もつ せいれい。どっしり！", EvolutionStage: 1},
	{ID: "char_015", Name: "ほしのせいれい", Emoji: "⭐", Rarity: models.RarityRare, Type: "spirit",
		Description: "ほしの ちからを もつ せいれい。きらきら！", EvolutionStage: 1},
	{ID: "char_016", Name: "つきのせいれい", Emoji: "🌙", Rarity: models.RarityRare, Type: "spirit",
		Description: "つきの ちからを もつ せいれい。しずか！", EvolutionStage: 1},

	// legends
	{ID: "char_017", Name: "りゅう", Emoji: "🐉", Rarity: models.RarityEpic, Type: "mythical",
		Description: "てんくうを とぶ りゅう。かんじの まもりがみ！", EvolutionStage: 1},
	{ID: "char_018", Name: "ゆにこーん", Emoji: "🦄", Rarity: models.RarityEpic, Type: "mythical",
		Description: "でんせつの ゆにこーん。まほうが つかえる！", EvolutionStage: 1},
	{ID: "char_019", Name: "ふぇにっくす", Emoji: "🔥", Rarity: models.RarityLegendary, Type: "mythical",
		Description: "ふっかつの とり。えいえんに いきる！", EvolutionStage: 1},
	{ID: "char_020", Name: "かんじのかみさま", Emoji: "📚", Rarity: models.RarityLegendary, Type: "spirit",
		Description: "すべての かんじを つくった かみさま。さいきょう！", EvolutionStage: 1},
}

var foods = []models.FoodDescriptor{
	{ID: "food_001", Name: "りんご", Emoji: "🍎", Experience: 10, Friendship: 5, Rarity: models.RarityCommon},
	{ID: "food_002", Name: "おにぎり", Emoji: "🍙", Experience: 15, Friendship: 5, Rarity: models.RarityCommon},
	{ID: "food_003", Name: "さかな", Emoji: "🐟", Experience: 12, Friendship: 5, Rarity: models.RarityCommon},
	{ID: "food_004", Name: "にんじん", Emoji: "🥕", Experience: 8, Friendship: 3, Rarity: models.RarityCommon},
	{ID: "food_005", Name: "ミルク", Emoji: "🥛", Experience: 10, Friendship: 5, Rarity: models.RarityCommon},
	{ID: "food_006", Name: "おだんご", Emoji: "🍡", Experience: 25, Friendship: 10, Rarity: models.RarityUncommon},
	{ID: "food_007", Name: "ケーキ", Emoji: "🍰", Experience: 30, Friendship: 12, Rarity: models.RarityUncommon},
	{ID: "food_008", Name: "カレー", Emoji: "🍛", Experience: 28, Friendship: 10, Rarity: models.RarityUncommon},
	{ID: "food_009", Name: "ほね", Emoji: "🦴", Experience: 20, Friendship: 15, Rarity: models.RarityUncommon},
	{ID: "food_010", Name: "はちみつ", Emoji: "🍯", Experience: 50, Friendship: 20, Rarity: models.RarityRare},
	{ID: "food_011", Name: "にじいろケーキ", Emoji: "🎂", Experience: 60, Friendship: 25, Rarity: models.RarityRare},
	{ID: "food_012", Name: "ほしがたクッキー", Emoji: "⭐", Experience: 55, Friendship: 22, Rarity: models.RarityRare},
}
