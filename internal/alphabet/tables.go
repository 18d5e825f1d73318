// internal/alphabet/tables.go
package alphabet

// tables maps an alphabet name to its character table. The kanji table
// covers common JLPT N5/N4 vocabulary in full word form.
var tables = map[string]map[string]Character{
	Hiragana: hiraganaTable,
	Katakana: katakanaTable,
	Kanji:    kanjiTable,
}

var hiraganaTable = map[string]Character{
	"あ": {Romaji: "a"},
	"い": {Romaji: "i"},
	"う": {Romaji: "u"},
	"え": {Romaji: "e"},
	"お": {Romaji: "o"},

	"か": {Romaji: "ka"},
	"き": {Romaji: "ki"},
	"く": {Romaji: "ku"},
	"け": {Romaji: "ke"},
	"こ": {Romaji: "ko"},

	"さ": {Romaji: "sa"},
	"し": {Romaji: "shi"},
	"す": {Romaji: "su"},
	"せ": {Romaji: "se"},
	"そ": {Romaji: "so"},

	"た": {Romaji: "ta"},
	"ち": {Romaji: "chi"},
	"つ": {Romaji: "tsu"},
	"て": {Romaji: "te"},
	"と": {Romaji: "to"},

	"な": {Romaji: "na"},
	"に": {Romaji: "ni"},
	"ぬ": {Romaji: "nu"},
	"ね": {Romaji: "ne"},
	"の": {Romaji: "no"},

	"は": {Romaji: "ha"},
	"ひ": {Romaji: "hi"},
	"ふ": {Romaji: "hu", RomajiVariant: "fu"},
	"へ": {Romaji: "he"},
	"ほ": {Romaji: "ho"},

	"ま": {Romaji: "ma"},
	"み": {Romaji: "mi"},
	"む": {Romaji: "mu"},
	"め": {Romaji: "me"},
	"も": {Romaji: "mo"},

	"ら": {Romaji: "ra"},
	"り": {Romaji: "ri"},
	"る": {Romaji: "ru"},
	"れ": {Romaji: "re"},
	"ろ": {Romaji: "ro"},

	"や": {Romaji: "ya"},
	"ゆ": {Romaji: "yu"},
	"よ": {Romaji: "yo"},

	"わ": {Romaji: "wa"},
	"を": {Romaji: "wo"},

	"が": {Romaji: "ga"},
	"ぎ": {Romaji: "gi"},
	"ぐ": {Romaji: "gu"},
	"げ": {Romaji: "ge"},
	"ご": {Romaji: "go"},

	"ざ": {Romaji: "za"},
	"じ": {Romaji: "ji"},
	"ず": {Romaji: "zu"},
	"ぜ": {Romaji: "ze"},
	"ぞ": {Romaji: "zo"},

	"ば": {Romaji: "ba"},
	"び": {Romaji: "bi"},
	"ぶ": {Romaji: "bu"},
	"べ": {Romaji: "be"},
	"ぼ": {Romaji: "bo"},

	"ぱ": {Romaji: "pa"},
	"ぴ": {Romaji: "pi"},
	"ぷ": {Romaji: "pu"},
	"ぺ": {Romaji: "pe"},
	"ぽ": {Romaji: "po"},

	"だ": {Romaji: "da"},
	"づ": {Romaji: "zu"},
	"で": {Romaji: "de"},
	"ど": {Romaji: "do"},

	"ん": {Romaji: "n"},
}

var katakanaTable = map[string]Character{
	"ア": {Romaji: "a"},
	"イ": {Romaji: "i"},
	"ウ": {Romaji: "u"},
	"エ": {Romaji: "e"},
	"オ": {Romaji: "o"},

	"カ": {Romaji: "ka"},
	"キ": {Romaji: "ki"},
	"ク": {Romaji: "ku"},
	"ケ": {Romaji: "ke"},
	"コ": {Romaji: "ko"},

	"サ": {Romaji: "sa"},
	"シ": {Romaji: "shi"},
	"ス": {Romaji: "su"},
	"セ": {Romaji: "se"},
	"ソ": {Romaji: "so"},

	"タ": {Romaji: "ta"},
	"チ": {Romaji: "chi"},
	"ツ": {Romaji: "tsu"},
	"テ": {Romaji: "te"},
	"ト": {Romaji: "to"},

	"ナ": {Romaji: "na"},
	"ニ": {Romaji: "ni"},
	"ヌ": {Romaji: "nu"},
	"ネ": {Romaji: "ne"},
	"ノ": {Romaji: "no"},

	"ハ": {Romaji: "ha"},
	"ヒ": {Romaji: "hi"},
	"フ": {Romaji: "hu", RomajiVariant: "fu"},
	"ヘ": {Romaji: "he"},
	"ホ": {Romaji: "ho"},

	"マ": {Romaji: "ma"},
	"ミ": {Romaji: "mi"},
	"ム": {Romaji: "mu"},
	"メ": {Romaji: "me"},
	"モ": {Romaji: "mo"},

	"ラ": {Romaji: "ra"},
	"リ": {Romaji: "ri"},
	"ル": {Romaji: "ru"},
	"レ": {Romaji: "re"},
	"ロ": {Romaji: "ro"},

	"ヤ": {Romaji: "ya"},
	"ユ": {Romaji: "yu"},
	"ヨ": {Romaji: "yo"},

	"ワ": {Romaji: "wa"},
	"ヲ": {Romaji: "wo"},

	"ガ": {Romaji: "ga"},
	"ギ": {Romaji: "gi"},
	"グ": {Romaji: "gu"},
	"ゲ": {Romaji: "ge"},
	"ゴ": {Romaji: "go"},

	"ザ": {Romaji: "za"},
	"ジ": {Romaji: "ji"},
	"ズ": {Romaji: "zu"},
	"ゼ": {Romaji: "ze"},
	"ゾ": {Romaji: "zo"},

	"バ": {Romaji: "ba"},
	"ビ": {Romaji: "bi"},
	"ブ": {Romaji: "bu"},
	"ベ": {Romaji: "be"},
	"ボ": {Romaji: "bo"},

	"パ": {Romaji: "pa"},
	"ピ": {Romaji: "pi"},
	"プ": {Romaji: "pu"},
	"ペ": {Romaji: "pe"},
	"ポ": {Romaji: "po"},

	"ダ": {Romaji: "da"},
	"ヅ": {Romaji: "zu"},
	"デ": {Romaji: "de"},
	"ド": {Romaji: "do"},

	"ン": {Romaji: "n"},
}

var kanjiTable = map[string]Character{
	// Numbers
	"一": {Romaji: "ichi", Meaning: "one"},
	"二": {Romaji: "ni", Meaning: "two"},
	"三": {Romaji: "san", Meaning: "three"},
	"四": {Romaji: "yon", RomajiVariant: "shi", Meaning: "four"},
	"五": {Romaji: "go", Meaning: "five"},
	"六": {Romaji: "roku", Meaning: "six"},
	"七": {Romaji: "nana", RomajiVariant: "shichi", Meaning: "seven"},
	"八": {Romaji: "hachi", Meaning: "eight"},
	"九": {Romaji: "kyuu", RomajiVariant: "ku", Meaning: "nine"},
	"十": {Romaji: "juu", Meaning: "ten"},
	"百": {Romaji: "hyaku", Meaning: "hundred"},
	"千": {Romaji: "sen", Meaning: "thousand"},
	"万": {Romaji: "man", Meaning: "ten thousand"},
	"円": {Romaji: "en", Meaning: "yen"},

	// Time
	"日":  {Romaji: "hi", RomajiVariant: "nichi", Meaning: "day", MeaningVariant: "sun"},
	"月":  {Romaji: "tsuki", RomajiVariant: "getsu", Meaning: "moon", MeaningVariant: "month"},
	"火":  {Romaji: "hi", RomajiVariant: "ka", Meaning: "fire"},
	"水":  {Romaji: "mizu", Meaning: "water"},
	"木":  {Romaji: "ki", Meaning: "tree", MeaningVariant: "wood"},
	"金":  {Romaji: "kane", RomajiVariant: "kin", Meaning: "money", MeaningVariant: "gold"},
	"土":  {Romaji: "tsuchi", Meaning: "earth", MeaningVariant: "soil"},
	"年":  {Romaji: "toshi", RomajiVariant: "nen", Meaning: "year"},
	"時":  {Romaji: "toki", RomajiVariant: "ji", Meaning: "time"},
	"分":  {Romaji: "fun", RomajiVariant: "bun", Meaning: "minute"},
	"半":  {Romaji: "han", Meaning: "half"},
	"毎日": {Romaji: "mainichi", Meaning: "every day"},
	"今":  {Romaji: "ima", Meaning: "now"},
	"今日": {Romaji: "kyou", Meaning: "today"},
	"週":  {Romaji: "shuu", Meaning: "week"},
	"朝":  {Romaji: "asa", Meaning: "morning"},
	"昼":  {Romaji: "hiru", Meaning: "noon", MeaningVariant: "daytime"},
	"夜":  {Romaji: "yoru", Meaning: "night"},
	"夕方": {Romaji: "yuugata", Meaning: "evening"},
	"午前": {Romaji: "gozen", Meaning: "morning", MeaningVariant: "am"},
	"午後": {Romaji: "gogo", Meaning: "afternoon", MeaningVariant: "pm"},
	"前":  {Romaji: "mae", Meaning: "before", MeaningVariant: "front"},
	"後ろ": {Romaji: "ushiro", Meaning: "behind", MeaningVariant: "back"},
	"間":  {Romaji: "aida", Meaning: "between", MeaningVariant: "interval"},

	// People
	"人":   {Romaji: "hito", Meaning: "person"},
	"男":   {Romaji: "otoko", Meaning: "man"},
	"女":   {Romaji: "onna", Meaning: "woman"},
	"子":   {Romaji: "ko", Meaning: "child"},
	"子供":  {Romaji: "kodomo", Meaning: "child", MeaningVariant: "children"},
	"父":   {Romaji: "chichi", Meaning: "father"},
	"母":   {Romaji: "haha", Meaning: "mother"},
	"友達":  {Romaji: "tomodachi", Meaning: "friend"},
	"先生":  {Romaji: "sensei", Meaning: "teacher"},
	"学生":  {Romaji: "gakusei", Meaning: "student"},
	"学校":  {Romaji: "gakkou", Meaning: "school"},
	"私":   {Romaji: "watashi", Meaning: "i"},
	"彼":   {Romaji: "kare", Meaning: "he", MeaningVariant: "boyfriend"},
	"彼女":  {Romaji: "kanojo", Meaning: "she", MeaningVariant: "girlfriend"},
	"誰":   {Romaji: "dare", Meaning: "who"},
	"自分":  {Romaji: "jibun", Meaning: "oneself"},
	"会社":  {Romaji: "kaisha", Meaning: "company"},
	"会社員": {Romaji: "kaishain", Meaning: "office worker"},

	// Body
	"目": {Romaji: "me", Meaning: "eye"},
	"耳": {Romaji: "mimi", Meaning: "ear"},
	"口": {Romaji: "kuchi", Meaning: "mouth"},
	"手": {Romaji: "te", Meaning: "hand"},
	"足": {Romaji: "ashi", Meaning: "foot", MeaningVariant: "leg"},
	"体": {Romaji: "karada", Meaning: "body"},
	"頭": {Romaji: "atama", Meaning: "head"},
	"顔": {Romaji: "kao", Meaning: "face"},
	"声": {Romaji: "koe", Meaning: "voice"},
	"心": {Romaji: "kokoro", Meaning: "heart", MeaningVariant: "mind"},

	// Nature
	"山":  {Romaji: "yama", Meaning: "mountain"},
	"川":  {Romaji: "kawa", Meaning: "river"},
	"海":  {Romaji: "umi", Meaning: "sea", MeaningVariant: "ocean"},
	"空":  {Romaji: "sora", Meaning: "sky"},
	"天気": {Romaji: "tenki", Meaning: "weather"},
	"雨":  {Romaji: "ame", Meaning: "rain"},
	"雪":  {Romaji: "yuki", Meaning: "snow"},
	"風":  {Romaji: "kaze", Meaning: "wind"},
	"花":  {Romaji: "hana", Meaning: "flower"},
	"森":  {Romaji: "mori", Meaning: "forest"},
	"石":  {Romaji: "ishi", Meaning: "stone"},
	"池":  {Romaji: "ike", Meaning: "pond"},
	"光":  {Romaji: "hikari", Meaning: "light"},
	"色":  {Romaji: "iro", Meaning: "color"},

	// Direction and location
	"上":  {Romaji: "ue", Meaning: "up", MeaningVariant: "above"},
	"下":  {Romaji: "shita", Meaning: "down", MeaningVariant: "below"},
	"中":  {Romaji: "naka", Meaning: "inside", MeaningVariant: "middle"},
	"外":  {Romaji: "soto", Meaning: "outside"},
	"左":  {Romaji: "hidari", Meaning: "left"},
	"右":  {Romaji: "migi", Meaning: "right"},
	"北":  {Romaji: "kita", Meaning: "north"},
	"南":  {Romaji: "minami", Meaning: "south"},
	"東":  {Romaji: "higashi", Meaning: "east"},
	"西":  {Romaji: "nishi", Meaning: "west"},
	"国":  {Romaji: "kuni", Meaning: "country"},
	"町":  {Romaji: "machi", Meaning: "town"},
	"村":  {Romaji: "mura", Meaning: "village"},
	"駅":  {Romaji: "eki", Meaning: "station"},
	"道":  {Romaji: "michi", Meaning: "road", MeaningVariant: "way"},
	"門":  {Romaji: "mon", Meaning: "gate"},
	"店":  {Romaji: "mise", Meaning: "shop", MeaningVariant: "store"},
	"部屋": {Romaji: "heya", Meaning: "room"},
	"家":  {Romaji: "ie", RomajiVariant: "uchi", Meaning: "house", MeaningVariant: "home"},
	"場所": {Romaji: "basho", Meaning: "place"},
}
