// SPDX-License-Identifier: Apache-2.0

package keywords

// The two vocabularies are compiled in and immutable for a run. The literal
// lists are carried over verbatim from the corpus curation notes, including
// variant spellings, common misspellings and a few fused entries; entries are
// deliberately not pruned, NewSet dedupes them.
var kurdishLiterals = []string{
	"kürt",
	"kürt",
	"kürtler",
	"hadep",
	"hdp",
	"bdp",
	"ysp",
	"dem",
	"demokratik islam kongresi",
	"sivil cuma",
	"özerklik",
	"barzani",
	"talabani",
	"rojava",
	"kobane",
	"kobani",
	"kdp",
	"ynk",
	"ypg",
	"terörist",
	"ermeni",
	"süryani",
	"kürt sorunu",
	"selahattin demirtaş",
	"apo",
	"selo",
	"öcalan",
	"kdp",
	"kurd",
	"Kurd",
	"kurdish",
	"pkk",
	"kck",
	"kürdistan",
	"bölücülük",
	"şeyh sait",
	"şeyh said",
	"terör örgütü",
	"terör propogandası",
	"terörkandil",
	"selo",
	"vatansız",
	"kürdistanlı",
	"kürdistan",
	"kobani",
	"direnişirojava",
	"devrimiterörle",
	"mücadele",
	"kürd",
	"kürtler",
	"terörizm",
	"ilişkisi",
	"kürt siyaseti",
	"kürdistan",
}

var islamLiterals = []string{
	"islam",
	"islam",
	"müslüman",
	"musluman",
	"din",
	"dinsiz",
	"dindar",
	"islamcı",
	"müslümanlar",
	"ümmet",
	"seküler",
	"şeriat",
	"müslümanız",
	"dinimiz bir",
	"dinimizden uzak",
	"hepimiz müslüman",
	"gerçek müslüman",
	"gerçek islam",
	"islamı satanlar",
	"islam düşmanı",
	"kafir",
	"dinimizden",
	"allahsız",
	"ateist",
	"şeyh",
	"molla",
	"islam",
	"İslam",
	"moslem",
	"müslüman",
	"musluman",
	"muselman",
	"müslüm",
	"din",
	"dinn",
	"dinim",
	"dinsiz",
	"dinsizz",
	"dindar",
	"dindarr",
	"islamcı",
	"islamcıl",
	"müslümanlar",
	"müslimanlar",
	"ümmet",
	"ümmett",
	"ümme",
	"seküler",
	"sekuler",
	"secular",
	"şeriat",
	"şeriaat",
	"müslümanız",
	"müslümünüz",
	"dinimiz bir",
	"dinimizden uzak",
	"hepimiz müslüman",
	"hepimiz musluman",
	"gerçek müslüman",
	"gerçek islam",
	"islamı satanlar",
	"islam düşmanı",
	"kafir",
	"kafer",
	"dinimizden",
	"allahsız",
	"allahsız",
	"ateist",
	"ateıst",
	"şeyh",
	"şeyyh",
	"molla",
	"mollaa",
	"imam",
	"hoca",
	"hocaa",
	"kuran",
	"kur'an",
	"quran",
	"peygamber",
	"peygamaber",
	"pbuh",
	"sav",
	"allah",
	"alllah",
	"allaaah",
	"cc",
	"c.c.",
	"inşallah",
	"inş",
	"maşallah",
	"maş",
	"mashallah",
}

// KurdishSet returns the Kurdish-issue vocabulary.
func KurdishSet() Set {
	return NewSet("kurdish", kurdishLiterals...)
}

// IslamSet returns the Islam vocabulary.
func IslamSet() Set {
	return NewSet("islam", islamLiterals...)
}

// DefaultMatcher returns the matcher over the two compiled-in sets.
func DefaultMatcher() *Matcher {
	return NewMatcher(KurdishSet(), IslamSet())
}
