// Package locale holds the static translation tables for the client-facing
// display strings and the lookup rules over them.  Tables are flat key/string
// maps per language with no interpolation or pluralization.  A key missing
// from a language's table resolves to the key itself; there is no fallback
// chain between languages.
package locale

// Language is a supported UI language code.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
	Arabic  Language = "ar"
)

// Default is the language assumed when a client does not pick one.
const Default = English

// Info describes a selectable language for the client's language menu.
type Info struct {
	Code   Language `json:"code"`
	Name   string   `json:"name"`
	Flag   string   `json:"flag"`
	IsRTL  bool     `json:"rtl"`
}

// Languages returns the fixed set of supported languages in menu order.
func Languages() []Info {
	return []Info{
		{Code: English, Name: "English", Flag: "🇬🇧"},
		{Code: Hindi, Name: "हिंदी", Flag: "🇮🇳"},
		{Code: Arabic, Name: "العربية", Flag: "🇸🇦", IsRTL: true},
	}
}

// Parse normalizes a raw language code.  Unsupported or empty codes resolve
// to the default language rather than an error; a bad Accept-Language header
// should never break a response.
func Parse(code string) Language {
	switch Language(code) {
	case English, Hindi, Arabic:
		return Language(code)
	default:
		return Default
	}
}

// T resolves key in the given language's table.  On any miss the raw key is
// returned verbatim.  T never fails.
func T(lang Language, key string) string {
	table, ok := translations[lang]
	if !ok {
		return key
	}
	if s, ok := table[key]; ok {
		return s
	}
	return key
}

// Table returns the full key/string table for a language.  Unknown languages
// yield the default table.
func Table(lang Language) map[string]string {
	if t, ok := translations[lang]; ok {
		return t
	}
	return translations[Default]
}

var translations = map[Language]map[string]string{
	English: {
		"home":              "Home",
		"explore":           "Explore",
		"howItWorks":        "How it Works",
		"login":             "Login",
		"register":          "Register",
		"searchPlaceholder": "Search by location, barber name, or service...",
		"filters":           "Filters",
		"happyCustomers":    "Happy Customers",
		"partnerShops":      "Partner Shops",
		"avgTimeSaved":      "Avg Time Saved",
		"popularShops":      "Popular Barber Shops Near You",
		"viewAll":           "View All",
		"bookNow":           "Book Now",
		"open":              "Open",
		"closed":            "Closed",
		"waitTime":          "Wait time",
		"reviews":           "reviews",
		"whyChoose":         "Why Choose TrimTime?",
		"saveTime":          "Save Time",
		"saveTimeDesc":      "No more waiting in long queues. Book your slot and arrive on time.",
		"findNearby":        "Find Nearby",
		"findNearbyDesc":    "Discover the best barber shops in your area with live availability.",
		"topRated":          "Top Rated",
		"topRatedDesc":      "Read reviews and ratings from real customers before booking.",
		"readyToSkip":       "Ready to Skip the Wait?",
		"joinThousands":     "Join thousands of happy customers and start booking your barber appointments smarter",
		"getStarted":        "Get Started Free",
		"forBarbers":        "For Barber Shops",
		"skipWait":          "Skip the Wait,",
		"bookInstantly":     "Book Your Cut Instantly",
		"heroDesc":          "Find the best barber shops near you, check live queues, and book your slot on WhatsApp",
		"locationUpdated":   "Location updated! Showing nearest shops.",
	},
	Hindi: {
		"home":              "होम",
		"explore":           "एक्सप्लोर",
		"howItWorks":        "कैसे काम करता है",
		"login":             "लॉगिन",
		"register":          "रजिस्टर",
		"searchPlaceholder": "लोकेशन, नाई की दुकान या सेवा से खोजें...",
		"filters":           "फ़िल्टर",
		"happyCustomers":    "खुश ग्राहक",
		"partnerShops":      "पार्टनर दुकानें",
		"avgTimeSaved":      "औसत समय बचाया",
		"popularShops":      "आपके पास लोकप्रिय नाई की दुकानें",
		"viewAll":           "सभी देखें",
		"bookNow":           "अभी बुक करें",
		"open":              "खुला",
		"closed":            "बंद",
		"waitTime":          "प्रतीक्षा समय",
		"reviews":           "समीक्षाएं",
		"whyChoose":         "TrimTime क्यों चुनें?",
		"saveTime":          "समय बचाएं",
		"saveTimeDesc":      "अब लंबी कतारों में इंतजार नहीं। अपना स्लॉट बुक करें और समय पर पहुंचें।",
		"findNearby":        "पास में खोजें",
		"findNearbyDesc":    "अपने क्षेत्र में लाइव उपलब्धता के साथ सर्वश्रेष्ठ नाई की दुकानें खोजें।",
		"topRated":          "टॉप रेटेड",
		"topRatedDesc":      "बुकिंग से पहले असली ग्राहकों की समीक्षाएं और रेटिंग पढ़ें।",
		"readyToSkip":       "इंतजार छोड़ने के लिए तैयार हैं?",
		"joinThousands":     "हजारों खुश ग्राहकों के साथ जुड़ें और स्मार्ट तरीके से बुकिंग शुरू करें",
		"getStarted":        "मुफ्त में शुरू करें",
		"forBarbers":        "नाई की दुकानों के लिए",
		"skipWait":          "इंतजार छोड़ें,",
		"bookInstantly":     "तुरंत अपना कट बुक करें",
		"heroDesc":          "अपने पास सर्वश्रेष्ठ नाई की दुकानें खोजें, लाइव कतारें देखें और WhatsApp पर स्लॉट बुक करें",
	},
	Arabic: {
		"home":              "الرئيسية",
		"explore":           "استكشف",
		"howItWorks":        "كيف يعمل",
		"login":             "تسجيل الدخول",
		"register":          "التسجيل",
		"searchPlaceholder": "البحث حسب الموقع أو اسم الحلاق أو الخدمة...",
		"filters":           "الفلاتر",
		"happyCustomers":    "عملاء سعداء",
		"partnerShops":      "محلات شريكة",
		"avgTimeSaved":      "متوسط الوقت المحفوظ",
		"popularShops":      "محلات الحلاقة الشهيرة بالقرب منك",
		"viewAll":           "عرض الكل",
		"bookNow":           "احجز الآن",
		"open":              "مفتوح",
		"closed":            "مغلق",
		"waitTime":          "وقت الانتظار",
		"reviews":           "التقييمات",
		"whyChoose":         "لماذا تختار TrimTime؟",
		"saveTime":          "وفر الوقت",
		"saveTimeDesc":      "لا مزيد من الانتظار في الطوابير الطويلة. احجز موعدك واصل في الوقت المحدد.",
		"findNearby":        "ابحث بالقرب منك",
		"findNearbyDesc":    "اكتشف أفضل محلات الحلاقة في منطقتك مع التوفر المباشر.",
		"topRated":          "الأعلى تقييماً",
		"topRatedDesc":      "اقرأ التقييمات والمراجعات من العملاء الحقيقيين قبل الحجز.",
		"readyToSkip":       "هل أنت مستعد لتخطي الانتظار؟",
		"joinThousands":     "انضم إلى آلاف العملاء السعداء وابدأ بحجز مواعيد الحلاقة بذكاء",
		"getStarted":        "ابدأ مجاناً",
		"forBarbers":        "لمحلات الحلاقة",
		"skipWait":          "تخطى الانتظار،",
		"bookInstantly":     "احجز قصتك على الفور",
		"heroDesc":          "اعثر على أفضل محلات الحلاقة بالقرب منك، تحقق من الطوابير المباشرة واحجز موعدك على WhatsApp",
	},
}
