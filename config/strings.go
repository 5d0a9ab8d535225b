package config

// Lang is a display language
type Lang int

const (
	LangENG Lang = iota
	LangAR
)

func (l Lang) String() string {
	if l == LangAR {
		return "AR"
	}
	return "ENG"
}

// RTL reports whether the language is laid out right to left
func (l Lang) RTL() bool { return l == LangAR }

// Toggle returns the other language
func (l Lang) Toggle() Lang {
	if l == LangAR {
		return LangENG
	}
	return LangAR
}

// ContactStrings are the contact form labels
type ContactStrings struct {
	Heading     string
	OfficeHours string
	Name        string
	Email       string
	Mobile      string
	Message     string
	Send        string
	Sending     string
	Success     string
	Fail        string
	Back        string
}

// BlogStrings are the blog page labels
type BlogStrings struct {
	Heading  string
	Sub      string
	NotFound string
	Loading  string
	Back     string
}

// Feature is a bold lead with a short description
type Feature struct {
	Bold string
	Desc string
}

// PartnerStrings are the partner page copy
type PartnerStrings struct {
	Title          string // Lines are "\n"
	Para           string
	YellowTitle    string
	YellowBody     []string
	DarkTitle      string
	Features       []Feature
	BottomTitle    string
	Cards          []Feature
	SmarterTitle   string
	SmarterMain    string
	SmarterPartner string
	SmarterButton  string
}

// FAQEntry is one question of the FAQ page
type FAQEntry struct {
	Question string
	Answer   string
}

// FAQStrings are the FAQ page copy
type FAQStrings struct {
	Heading   string
	Toggle    string // Names the other language
	Back      string
	Copyright string
	Entries   []FAQEntry
}

// Strings is one language's string table
type Strings struct {
	IntroTitle1 string
	IntroTitle2 string
	Messages    []string // Line breaks are "\n"
	OutroLead   string
	OutroAccent string
	CardsTitle  string
	NavLinks    []string
	FooterLead  string
	FooterEmph  string
	SiteBy      string
	Contact     ContactStrings
	Blog        BlogStrings
	Partner     PartnerStrings
	FAQ         FAQStrings
}

// HighlightWords are drawn in the accent color inside messages
var HighlightWords = []string{"perfect", "cup", "yours", "under", "minute", "Real", "beans", "Iced", "24/7"}

var stringTables = map[Lang]Strings{
	LangENG: {
		IntroTitle1: "CoffeeOn doesn't vend.",
		IntroTitle2: "It's your smart barista.",
		Messages: []string{
			"Save your perfect cup\nin the app",
			"Skip the queue",
			"and make every coffee\nyours.",
			"Hot, iced, or your own\nsignature recipe in\nunder a minute",
			"Real Milk\nFresh beans\nIced Options",
			"Available 24/7",
		},
		OutroLead:   "CoffeeOn, ",
		OutroAccent: "Rule Your Ritual",
		CardsTitle:  "Coffee that moves with you, fits your routine, and feels like it's made just for you",
		NavLinks:    []string{"Home", "Blog", "Contact", "Partner", "FAQ"},
		FooterLead:  "Kinder world with ",
		FooterEmph:  "Ethical Life.",
		SiteBy:      "Site by CoffeeOn",
		Contact: ContactStrings{
			Heading:     "Contact Us",
			OfficeHours: "Office hours: Monday - Friday 11 AM - 2 PM",
			Name:        "Name",
			Email:       "Email",
			Mobile:      "Mobile Number",
			Message:     "Message",
			Send:        "Send Message",
			Sending:     "Sending...",
			Success:     "Message sent successfully!",
			Fail:        "Failed to send message. Try again.",
			Back:        "Back",
		},
		Blog: BlogStrings{
			Heading:  "BLOG",
			Sub:      "Brewing the headlines, one ritual at a time.",
			NotFound: "Post not found",
			Loading:  "Loading...",
			Back:     "Back",
		},
		Partner: PartnerStrings{
			Title:       "Partner\nWith Us",
			Para:        "Coffee is a daily ritual that defines the workplace and guest experience. CoffeeOn lets you take control of that moment, creating a consistent, memorable, and premium coffee culture in your business environment.",
			YellowTitle: "Premium Coffee, Zero Complexity",
			YellowBody: []string{
				"Turn coffee into a premium amenity without the overhead of baristas or complex operations.",
				"From offices to hotels to gyms, CoffeeOn fits seamlessly into any environment and elevates every space with café-quality coffee that adapts to your brand.",
			},
			DarkTitle: "Why Businesses Choose CoffeeOn",
			Features: []Feature{
				{"Zero-wait convenience", "App pre-order or instant smart vending"},
				{"24/7 availability", "Perfect for spaces that never stop"},
				{"Fast, clean, reliable", "Consistent quality every time"},
				{"Personalized profiles", "One-tap reorders and loyalty via app"},
				{"AI-powered preferences", "Flavors evolve with every user"},
				{"Smart efficiency", "Optimized ingredients and cost margins"},
				{"Flexible payment models", "Subscription or wallet options"},
			},
			BottomTitle: "Built for Everyone in Your Space",
			Cards: []Feature{
				{"For Employees", "A consistent, premium perk that boosts morale and productivity."},
				{"For Guests", "A seamless amenity that elevates hospitality, retail, and fitness experiences."},
				{"For Operators", "Café-level quality without baristas, long waits, or added complexity."},
			},
			SmarterTitle:   "The Smarter Coffee Experience",
			SmarterMain:    "Offer 24/7 premium coffee in your space. No queues. No extra staff. No limits.",
			SmarterPartner: "Let's partner and share revenue",
			SmarterButton:  "Call if you need a \"coffee on the go\" solution at your location",
		},
		FAQ: FAQStrings{
			Heading:   "CoffeeOn FAQ",
			Toggle:    "العربية",
			Back:      "Back",
			Copyright: "© CoffeeOn",
			Entries: []FAQEntry{
				{"What is CoffeeOn?", "CoffeeOn is a new category of smart, app-connected barista stations, delivering consistently premium coffee, personalized for you, available 24/7 wherever you are."},
				{"Is CoffeeOn a vending machine or a café?", "Neither. It's your personal barista: café-quality coffee, made to order, fully customizable, and always close. It fits your lifestyle, not the other way around."},
				{"How do I customize my coffee?", "Use our easy-to-use app to customize your drink, save your preferences, and order ahead, so your coffee is just right, every single time."},
				{"What ingredients do you use?", "We use only real milk and fresh beans, ground and brewed to order. Choose hot or iced options, always premium quality."},
				{"Where can I find a CoffeeOn station?", "You can find CoffeeOn at offices, colleges, gyms, co-working spaces, apartments, and more locations every week. Check the app for the nearest CoffeeOn to you."},
				{"Is CoffeeOn environmentally conscious?", "We build sustainability into every part of the system, from responsible sourcing to eco-friendly packaging, with a strong commitment to a better planet."},
			},
		},
	},
	LangAR: {
		IntroTitle1: "كوفي أون ليست آلة بيع قهوة عادية.",
		IntroTitle2: "إنها باريستا ذكية بين يديك.",
		Messages: []string{
			"اطلب فنجانك على طريقتك في التطبيق",
			"تخطَّ طوابير الانتظار",
			"واجعل كل كوب قهوة على مزاجك",
			"ساخنة أو مثلجة أو وصفة على مزاجك في أقل من دقيقة",
			"حليب طازج – حبوب بن طازجة – خيارات مثلجة",
			"متاحة على مدار الساعة كل أيام الاسبوع",
		},
		OutroLead:   "كوفي أون، ",
		OutroAccent: "اصنع قهوتك على مزاجك",
		CardsTitle:  "قهوة تتحرك معك، تناسب روتينك، وتشعرك وكأنها صنعت لك خصيصًا",
		NavLinks:    []string{"الرئيسية", "المدونة", "اتصل بنا", "شركاؤنا", "الأسئلة الشائعة"},
		FooterLead:  "عالم ألطف مع ",
		FooterEmph:  "حياة أخلاقية.",
		SiteBy:      "الموقع بواسطة CoffeeOn",
		Contact: ContactStrings{
			Heading:     "اتصل بنا",
			OfficeHours: "ساعات العمل: الاثنين – الجمعة 11 صباحًا – 2 مساءً",
			Name:        "الاسم",
			Email:       "البريد الإلكتروني",
			Mobile:      "رقم الهاتف",
			Message:     "الرسالة",
			Send:        "إرسال الرسالة",
			Sending:     "جارٍ الإرسال...",
			Success:     "تم إرسال الرسالة بنجاح!",
			Fail:        "فشل في إرسال الرسالة. حاول مرة أخرى.",
			Back:        "رجوع",
		},
		Blog: BlogStrings{
			Heading:  "المدونة",
			Sub:      "حيث تصبح قهوتنا حديث الجميع.",
			NotFound: "المقال غير موجود",
			Loading:  "جارٍ التحميل...",
			Back:     "رجوع",
		},
		Partner: PartnerStrings{
			Title:       "كن شريكًا\nمعنا",
			Para:        "القهوة هي طقس يومي يحدد مكان العمل وتجربة الضيوف. قهوة أون تتيح لك التحكم في هذه اللحظة، لتخلق ثقافة قهوة مميزة وراقية لا تُنسى في بيئة عملك.",
			YellowTitle: "قهوة فاخرة، بلا تعقيد",
			YellowBody: []string{
				"حول القهوة إلى ميزة فاخرة دون الحاجة إلى باريستا أو عمليات معقدة.",
				"من المكاتب إلى الفنادق وصالات الألعاب الرياضية، قهوة أون تتناسب بسلاسة مع أي بيئة وتُرفع الجودة في كل مكان مع قهوة بمستوى المقاهي تتكيف مع علامتك التجارية.",
			},
			DarkTitle: "لماذا تختار الشركات قهوة أون",
			Features: []Feature{
				{"راحة بدون انتظار", "طلب مسبق عبر التطبيق أو البيع الذكي الفوري"},
				{"توافر على مدار الساعة", "مثالي للأماكن التي لا تغلق"},
				{"سرعة ونظافة وموثوقية", "جودة ثابتة في كل مرة"},
				{"ملفات شخصية مخصصة", "إعادة الطلب بضغطة واحدة وبرامج ولاء عبر التطبيق"},
				{"تفضيلات مدعومة بالذكاء الاصطناعي", "النَكهات تتطور مع كل مستخدم"},
				{"كفاءة ذكية", "مكونات محسّنة وهوامش تكلفة"},
				{"نماذج دفع مرنة", "اشتراك أو خيارات محفظة إلكترونية"},
			},
			BottomTitle: "مصممة للجميع في مكانك",
			Cards: []Feature{
				{"للموظفين", "ميزة فاخرة ثابتة تعزز المعنويات والإنتاجية."},
				{"للضيوف", "ميزة سلسة ترفع تجربة الضيافة والتجزئة واللياقة البدنية."},
				{"للمشغلين", "جودة بمستوى المقاهي بدون باريستا أو انتظار طويل أو تعقيد إضافي."},
			},
			SmarterTitle:   "تجربة القهوة الذكية",
			SmarterMain:    "قدّم قهوة فاخرة طوال اليوم في مكانك. بدون انتظار، بدون موظفين إضافيين، بدون حدود.",
			SmarterPartner: "فلنتشارك في الشراكة وتقاسم الإيرادات",
			SmarterButton:  "اتصل إذا كنت بحاجة لحل \"قهوة أثناء التنقل\" في موقعك",
		},
		FAQ: FAQStrings{
			Heading:   "الأسئلة الشائعة",
			Toggle:    "English",
			Back:      "رجوع",
			Copyright: "© CoffeeOn",
			Entries: []FAQEntry{
				{"ما هو CoffeeOn؟", "CoffeeOn هي فئة جديدة من محطات القهوة الذكية المتصلة بالتطبيق، تقدم قهوة مميزة باستمرار، مخصصة لك، ومتاحة على مدار الساعة أينما كنت."},
				{"هل CoffeeOn آلة بيع أم مقهى؟", "ولا واحدة منهما. إنها باريستا شخصية لك: قهوة بجودة المقاهي، تُحضّر حسب الطلب، قابلة للتخصيص بالكامل، ودائمًا بالقرب منك."},
				{"كيف يمكنني تخصيص قهوتي؟", "استخدم تطبيقنا السهل لتخصيص مشروبك، احفظ تفضيلاتك، واطلب مسبقًا، لتكون قهوتك تمامًا كما تحب في كل مرة."},
				{"ما المكونات التي تستخدمونها؟", "نستخدم فقط الحليب الحقيقي وحبوب البن الطازجة، تُطحن وتُحضّر عند الطلب. يمكنك اختيار قهوة ساخنة أو باردة، دائمًا بجودة عالية."},
				{"أين يمكنني العثور على محطة CoffeeOn؟", "يمكنك العثور على CoffeeOn في المكاتب، الكليات، الصالات الرياضية، مساحات العمل المشتركة، والمجمعات السكنية، والمزيد من المواقع كل أسبوع. تحقق من التطبيق لمعرفة أقرب محطة إليك."},
				{"هل CoffeeOn صديقة للبيئة؟", "نضع الاستدامة في كل جزء من النظام، من المصادر المسؤولة إلى التغليف الصديق للبيئة، مع التزام قوي بكوكب أفضل."},
			},
		},
	},
}

// CurrentLang is the active display language
var CurrentLang = LangENG

// Text returns the string table for the active language
func Text() Strings {
	return stringTables[CurrentLang]
}

// TextFor returns the string table for lang
func TextFor(lang Lang) Strings {
	return stringTables[lang]
}
