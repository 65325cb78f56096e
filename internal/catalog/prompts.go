package catalog

import "kanjiquest/internal/models"

func p(num, glyph, answer, meaning string, grade int, wrong ...string) models.Prompt {
	return models.Prompt{
		ID:          "kanji_" + num,
		Glyph:       glyph,
		Answer:      answer,
		Distractors: wrong,
		Meaning:     meaning,
		Grade:       grade,
	}
}

var prompts = []models.Prompt{
	// grade 1
	p("001", "一", "いち", "数の1", 1, "に", "さん"),
	p("002", "二", "に", "数の2", 1, "いち", "さん"),
	p("003", "三", "さん", "数の3", 1, "に", "し"),
	p("004", "四", "し", "数の4", 1, "さん", "ご"),
	p("005", "五", "ご", "数の5", 1, "し", "ろく"),
	p("006", "六", "ろく", "数の6", 1, "ご", "なな"),
	p("007", "七", "なな", "数の7", 1, "ろく", "はち"),
	p("008", "八", "はち", "数の8", 1, "なな", "きゅう"),
	p("009", "九", "きゅう", "数の9", 1, "はち", "じゅう"),
	p("010", "十", "じゅう", "数の10", 1, "きゅう", "ひゃく"),
	p("011", "日", "ひ", "太陽", 1, "つき", "ほし"),
	p("012", "月", "つき", "月", 1, "ひ", "ほし"),
	// grade 2
	p("101", "引", "ひく", "引っ張る", 2, "おす", "はこぶ"),
	p("102", "羽", "はね", "鳥の羽", 2, "つばさ", "とぶ"),
	p("103", "雲", "くも", "雲", 2, "あめ", "ゆき"),
	p("104", "園", "えん", "庭園", 2, "にわ", "はたけ"),
	p("105", "遠", "とおい", "遠い", 2, "ちかい", "ひろい"),
	p("106", "何", "なに", "何", 2, "だれ", "どこ"),
	p("107", "科", "か", "科目", 2, "もく", "るい"),
	p("108", "夏", "なつ", "夏", 2, "はる", "あき"),
	p("109", "家", "いえ", "家", 2, "うち", "や"),
	p("110", "歌", "うた", "歌", 2, "おど", "かな"),
	p("111", "画", "が", "絵画", 2, "え", "ず"),
	p("112", "回", "かい", "回る", 2, "まわる", "めぐる"),
	// grade 3
	p("201", "悪", "わるい", "悪い", 3, "よい", "きたない"),
	p("202", "安", "やすい", "安い", 3, "たかい", "ひくい"),
	p("203", "暗", "くらい", "暗い", 3, "あかるい", "くろい"),
	p("204", "医", "い", "医者", 3, "びょう", "やく"),
	p("205", "委", "い", "委員", 3, "まかせる", "たのむ"),
	p("206", "意", "い", "意味", 3, "こころ", "おもう"),
	p("207", "育", "そだてる", "育てる", 3, "うまれる", "のびる"),
	p("208", "員", "いん", "委員", 3, "ひと", "かず"),
	p("209", "院", "いん", "病院", 3, "やかた", "いえ"),
	p("210", "飲", "のむ", "飲む", 3, "たべる", "くう"),
	p("211", "運", "はこぶ", "運ぶ", 3, "もつ", "とぶ"),
	p("212", "泳", "およぐ", "泳ぐ", 3, "あるく", "はしる"),
	// grade 4
	p("301", "愛", "あい", "愛", 4, "こい", "すき"),
	p("302", "案", "あん", "案内", 4, "かんがえ", "あんない"),
	p("303", "以", "い", "以上", 4, "も", "より"),
	p("304", "衣", "ころも", "衣服", 4, "きもの", "ふく"),
	p("305", "位", "くらい", "位置", 4, "ば", "じゅん"),
	p("306", "囲", "かこむ", "囲む", 4, "まわる", "めぐる"),
	p("307", "胃", "い", "胃", 4, "はら", "おなか"),
	p("308", "印", "いん", "印鑑", 4, "しるし", "はん"),
	p("309", "英", "えい", "英語", 4, "はな", "すぐれる"),
	p("310", "栄", "さかえる", "栄える", 4, "はえる", "のびる"),
	p("311", "塩", "しお", "塩", 4, "さとう", "す"),
	p("312", "億", "おく", "億", 4, "まん", "せん"),
	// grade 5
	p("401", "圧", "あつ", "圧力", 5, "おす", "おさえる"),
	p("402", "移", "うつる", "移動", 5, "かわる", "いく"),
	p("403", "因", "いん", "原因", 5, "もと", "げんいん"),
	p("404", "永", "えい", "永遠", 5, "ながい", "とこしえ"),
	p("405", "営", "えい", "営業", 5, "いとなむ", "いとなみ"),
	p("406", "衛", "えい", "衛生", 5, "まもる", "まもり"),
	p("407", "易", "やさしい", "易しい", 5, "むずかしい", "かんたん"),
	p("408", "益", "えき", "利益", 5, "り", "とく"),
	p("409", "液", "えき", "液体", 5, "みず", "ながれ"),
	p("410", "演", "えん", "演技", 5, "あそぶ", "まなぶ"),
	p("411", "応", "おう", "応援", 5, "こたえる", "むかえる"),
	p("412", "往", "おう", "往復", 5, "いく", "ゆく"),
	// grade 6
	p("501", "異", "こと", "異なる", 6, "ちがう", "かわる"),
	p("502", "遺", "い", "遺産", 6, "のこす", "わすれる"),
	p("503", "域", "いき", "地域", 6, "ば", "くに"),
	p("504", "宇", "う", "宇宙", 6, "いえ", "そら"),
	p("505", "映", "うつる", "映画", 6, "はえる", "かがやく"),
	p("506", "延", "のびる", "延長", 6, "のばす", "ひろがる"),
	p("507", "沿", "そう", "沿岸", 6, "そって", "ながれる"),
	p("508", "我", "われ", "我々", 6, "わたし", "ぼく"),
	p("509", "灰", "はい", "灰", 6, "すみ", "もえる"),
	p("510", "拡", "かく", "拡大", 6, "ひろがる", "ひろげる"),
	p("511", "革", "かく", "革命", 6, "かわ", "あらためる"),
	p("512", "閣", "かく", "内閣", 6, "たかどの", "やかた"),
}
