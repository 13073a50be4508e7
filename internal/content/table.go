// Package content holds the static reply material for the school bot:
// the topic table, the shared carousel card sets, and the FAQ records.
// Everything here is data loaded once at startup; no logic lives here.
package content

import "oyunlag-bot/internal/domain"

// Topic keys rendered from the table. Control payloads (support request,
// bot resume, FAQ feedback) are defined in the bot package, not here.
const (
	TopicMainMenu    = "GET_STARTED"
	TopicCurriculum  = "CURRICULUM"
	TopicAdmission   = "ADMISSION"
	TopicTuition     = "TUITION"
	TopicFood        = "SCHOOL_FOOD"
	TopicBus         = "SCHOOL_BUS"
	TopicLocation    = "LOCATION"
	TopicLocation1   = "LOCATION_1"
	TopicLocation2   = "LOCATION_2"
	TopicContact     = "CONTACT"
	TopicSupport     = "CONTACT_SUPPORT"
	TopicWebsite     = "WEBSITE"
	TopicVirtualTour = "VIRTUAL_TOUR"
	TopicEventNews   = "EVENT_NEWS"
)

var defaultQuickReplies = []domain.QuickReply{
	{ContentType: "text", Title: "📚 Сургалтын хөтөлбөр", Payload: TopicCurriculum},
	{ContentType: "text", Title: "💰 Төлбөр", Payload: TopicTuition},
	{ContentType: "text", Title: "📝 Элсэлт", Payload: TopicAdmission},
	{ContentType: "text", Title: "📍 Хаяг байршил", Payload: TopicLocation},
}

var extendedQuickReplies = []domain.QuickReply{
	{ContentType: "text", Title: "🍽️ Хоол", Payload: TopicFood},
	{ContentType: "text", Title: "🚌 Автобус", Payload: TopicBus},
	{ContentType: "text", Title: "☎️ Холбоо барих", Payload: TopicContact},
	{ContentType: "text", Title: "🏠 Үндсэн цэс", Payload: TopicMainMenu},
}

// MainMenuCards is the shared carousel rendered for every carousel-type
// topic except the virtual tour.
var MainMenuCards = []domain.Card{
	{
		Title:    "📚 Сургалтын хөтөлбөр",
		Subtitle: "Үндэсний болон олон улсын хөтөлбөр, 68 дугуйлан",
		ImageURL: "https://images.unsplash.com/photo-1503676260728-1c00da094a0b?w=400&h=400&fit=crop",
		Buttons:  []domain.Button{{Type: domain.ButtonPostback, Title: "Дэлгэрэнгүй", Payload: TopicCurriculum}},
	},
	{
		Title:    "💰 Сургалтын төлбөр",
		Subtitle: "Бэлтгэл: 1.2сая₮, 1-12анги: 12.5сая₮",
		ImageURL: "https://images.unsplash.com/photo-1554224155-6726b3ff858f?w=400&h=400&fit=crop",
		Buttons:  []domain.Button{{Type: domain.ButtonPostback, Title: "Дэлгэрэнгүй", Payload: TopicTuition}},
	},
	{
		Title:    "📝 Элсэлт",
		Subtitle: "Элсэлтийн бүртгэл, шаардлага",
		ImageURL: "https://images.unsplash.com/photo-1434030216411-0b793f4b4173?w=400&h=400&fit=crop",
		Buttons:  []domain.Button{{Type: domain.ButtonPostback, Title: "Дэлгэрэнгүй", Payload: TopicAdmission}},
	},
	{
		Title:    "📍 Хаяг байршил",
		Subtitle: "2 байрны хаяг, газрын зураг",
		ImageURL: "https://images.unsplash.com/photo-1580582932707-520aed937b7b?w=400&h=400&fit=crop",
		Buttons:  []domain.Button{{Type: domain.ButtonPostback, Title: "Дэлгэрэнгүй", Payload: TopicLocation}},
	},
	{
		Title:    "🍽️ Сургуулийн хоол",
		Subtitle: "Өдрийн хоолны үнэ: 10,000-12,000₮",
		ImageURL: "https://images.unsplash.com/photo-1544025162-d76694265947?w=400&h=400&fit=crop",
		Buttons:  []domain.Button{{Type: domain.ButtonPostback, Title: "Дэлгэрэнгүй", Payload: TopicFood}},
	},
	{
		Title:    "🚌 Сургуулийн автобус",
		Subtitle: "Чиглэл, төлбөр: 6,000-12,000₮",
		ImageURL: "https://images.unsplash.com/photo-1570125909232-eb263c188f7e?w=400&h=400&fit=crop",
		Buttons:  []domain.Button{{Type: domain.ButtonPostback, Title: "Дэлгэрэнгүй", Payload: TopicBus}},
	},
	{
		Title:    "☎️ Холбоо барих",
		Subtitle: "Утас: 7575 5050, И-мэйл, Facebook",
		ImageURL: "https://images.unsplash.com/photo-1423666639041-f56000c27a9a?w=400&h=400&fit=crop",
		Buttons:  []domain.Button{{Type: domain.ButtonPostback, Title: "Дэлгэрэнгүй", Payload: TopicContact}},
	},
	{
		Title:    "🆘 Тусламж авах",
		Subtitle: "Манай багтай шууд холбогдох",
		ImageURL: "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=400&h=400&fit=crop",
		Buttons:  []domain.Button{{Type: domain.ButtonPostback, Title: "Холбогдох", Payload: TopicSupport}},
	},
}

// VirtualTourCards is the card set for the virtual tour topic only.
var VirtualTourCards = []domain.Card{
	{
		Title:    "🏫 1-р байр — танхимууд",
		Subtitle: "Хичээлийн танхим, лаборатори, номын сан",
		ImageURL: "https://images.unsplash.com/photo-1580582932707-520aed937b7b?w=400&h=400&fit=crop",
		Buttons:  []domain.Button{{Type: domain.ButtonWebURL, Title: "🌐 360° үзэх", URL: "http://www.oyunlag.edu.mn/tour/building-1"}},
	},
	{
		Title:    "🎭 Урлаг, спорт заал",
		Subtitle: "Спорт заал, урлагийн танхим, дугуйлангууд",
		ImageURL: "https://images.unsplash.com/photo-1571902943202-507ec2618e8f?w=400&h=400&fit=crop",
		Buttons:  []domain.Button{{Type: domain.ButtonWebURL, Title: "🌐 360° үзэх", URL: "http://www.oyunlag.edu.mn/tour/sports"}},
	},
	{
		Title:    "🍽️ Хоолны заал",
		Subtitle: "Сургуулийн гал тогоо, хоолны заал",
		ImageURL: "https://images.unsplash.com/photo-1544025162-d76694265947?w=400&h=400&fit=crop",
		Buttons:  []domain.Button{{Type: domain.ButtonWebURL, Title: "🌐 360° үзэх", URL: "http://www.oyunlag.edu.mn/tour/cafeteria"}},
	},
}

// Table maps topic keys to their display payloads.
var Table = map[string]domain.ContentEntry{
	TopicMainMenu: {
		Type:         domain.RenderCarousel,
		Text:         "Сайн байна уу! Та 'Оюунлаг сургууль'-тай холбогдлоо.",
		QuickReplies: defaultQuickReplies,
	},
	TopicCurriculum: {
		Type: domain.RenderTextWithQuickReplies,
		Text: "📖 Оюунлаг сургуулийн хөтөлбөр\n\n🏛️ Үндэсний хөтөлбөр\n• МУ-ын цөм хөтөлбөр бүрэн хэрэгжүүлдэг\n\n🌍 Олон улсын - Pearson Edexcel\n• iPrimary, iLowerSecondary, IGCSE, A Level\n\n🚀 Дотоод хөтөлбөр\n• STEAM, Smart Math, AR/VR\n• Хятад хэл, Информатик, Дизайн\n• SAT, IELTS, TOEFL бэлтгэл\n\n🧠 Нийгмийн хөгжил\n• Positive Action Second Step\n\n🎭🎨🎵 68 дугуйлан ҮНЭГҮЙ!",
		QuickReplies: []domain.QuickReply{
			{ContentType: "text", Title: "💰 Төлбөр", Payload: TopicTuition},
			{ContentType: "text", Title: "📝 Элсэлт", Payload: TopicAdmission},
			{ContentType: "text", Title: "🌐 Вэбсайт", Payload: TopicWebsite},
			{ContentType: "text", Title: "🏠 Үндсэн цэс", Payload: TopicMainMenu},
		},
	},
	TopicAdmission: {
		Type: domain.RenderButton,
		Text: "📝 Элсэлтийн мэдээлэл\n\nОюунлаг сургуульд элсэх тухай дэлгэрэнгүй мэдээллийг манай вэбсайтаас авна уу.\n\nАсуух зүйл байвал холбогдоно уу!",
		Buttons: []domain.Button{
			{Type: domain.ButtonWebURL, Title: "🌐 Вэбсайт", URL: "http://www.oyunlag.edu.mn"},
			{Type: domain.ButtonPostback, Title: "☎️ Холбоо барих", Payload: TopicContact},
			{Type: domain.ButtonPostback, Title: "🏠 Буцах", Payload: TopicMainMenu},
		},
		QuickReplies: extendedQuickReplies,
	},
	TopicTuition: {
		Type: domain.RenderTextWithQuickReplies,
		Text: "💰 Сургалтын төлбөр 2025-2026\n\n📚 Бэлтгэл ангийн төлбөр:\n💵 1,200,000₮\n\n📚 1-12-р ангийн төлбөр:\n💵 12,500,000₮\n\n🎭🎨🎵 68 төрлийн дугуйлан ҮНЭГҮЙ! ✨",
		QuickReplies: []domain.QuickReply{
			{ContentType: "text", Title: "📚 Хөтөлбөр", Payload: TopicCurriculum},
			{ContentType: "text", Title: "🍽️ Хоол", Payload: TopicFood},
			{ContentType: "text", Title: "🚌 Автобус", Payload: TopicBus},
			{ContentType: "text", Title: "🏠 Үндсэн цэс", Payload: TopicMainMenu},
		},
	},
	TopicFood: {
		Type: domain.RenderTextWithQuickReplies,
		Text: "🍽️ Сургуулийн хоолны үнэ\n\n🥗 Бага анги: 10,000₮\n🍕 Дунд анги: 11,000₮\n🍕🥗 Ахлах анги: 12,000₮\n\nЦэсийн мэдээллийг вэбсайтаас авна уу.",
		QuickReplies: []domain.QuickReply{
			{ContentType: "text", Title: "🚌 Автобус", Payload: TopicBus},
			{ContentType: "text", Title: "💰 Төлбөр", Payload: TopicTuition},
			{ContentType: "text", Title: "☎️ Холбоо барих", Payload: TopicContact},
			{ContentType: "text", Title: "🏠 Үндсэн цэс", Payload: TopicMainMenu},
		},
	},
	TopicBus: {
		Type: domain.RenderTextWithQuickReplies,
		Text: "🚌 Автобусны үйлчилгээ\n\n📅 'Нью Армстронг' ХХК хариуцдаг\n\n👨‍👩‍👧 2-12-р анги ✅ (1-р анги ⛔)\n\n💰 Төлбөр:\n• 1 талдаа: 6,000₮/өдөр\n• 2 талдаа: 12,000₮/өдөр\n\n⏰ Авах: 07:00-07:30\n🏫 Хүргэх: 15:40",
		QuickReplies: []domain.QuickReply{
			{ContentType: "text", Title: "💰 Төлбөр", Payload: TopicTuition},
			{ContentType: "text", Title: "🍽️ Хоол", Payload: TopicFood},
			{ContentType: "text", Title: "📍 Байршил", Payload: TopicLocation},
			{ContentType: "text", Title: "🏠 Үндсэн цэс", Payload: TopicMainMenu},
		},
	},
	TopicLocation: {
		Type: domain.RenderButton,
		Text: "📍 Хаяг байршил\n\nОюунлаг сургууль 2 байртай:",
		Buttons: []domain.Button{
			{Type: domain.ButtonPostback, Title: "🏢 1-р байр", Payload: TopicLocation1},
			{Type: domain.ButtonPostback, Title: "🏢 2-р байр", Payload: TopicLocation2},
			{Type: domain.ButtonPostback, Title: "🏠 Буцах", Payload: TopicMainMenu},
		},
		QuickReplies: extendedQuickReplies,
	},
	TopicLocation1: {
		Type: domain.RenderButton,
		Text: "🏢 1-р байр\n\n📍 БЗД 15-р хороо, 13-р хороолол, 43-3\nБөхийн өргөөний зүүн урд\n\n📱 7575 5050",
		Buttons: []domain.Button{
			{Type: domain.ButtonWebURL, Title: "🗺️ Google Maps", URL: "https://maps.google.com/?q=Oyunlag+School+Building+1+Ulaanbaatar"},
			{Type: domain.ButtonWebURL, Title: "🌐 Вэбсайт", URL: "http://www.oyunlag.edu.mn"},
			{Type: domain.ButtonPostback, Title: "◀️ Буцах", Payload: TopicLocation},
		},
	},
	TopicLocation2: {
		Type: domain.RenderButton,
		Text: "🏢 2-р байр\n\n📍 БЗД 18-р хороо, 13-р хороолол 47/1\n\n📱 7575 5050",
		Buttons: []domain.Button{
			{Type: domain.ButtonWebURL, Title: "🗺️ Google Maps", URL: "https://maps.google.com/?q=Oyunlag+School+Building+2+Ulaanbaatar"},
			{Type: domain.ButtonWebURL, Title: "🌐 Вэбсайт", URL: "http://www.oyunlag.edu.mn"},
			{Type: domain.ButtonPostback, Title: "◀️ Буцах", Payload: TopicLocation},
		},
	},
	TopicContact: {
		Type: domain.RenderButton,
		Text: "☎️ Холбоо барих\n\n📞 7575 5050\n📱 88113096, 88113097\n🌐 www.oyunlag.edu.mn\n📧 info@oyunlag.edu.mn",
		Buttons: []domain.Button{
			{Type: domain.ButtonPhone, Title: "📞 Залгах", Payload: "+97675755050"},
			{Type: domain.ButtonWebURL, Title: "🌐 Вэбсайт", URL: "http://www.oyunlag.edu.mn"},
			{Type: domain.ButtonWebURL, Title: "📘 Facebook", URL: "https://www.facebook.com/oyunlag.edu.mn"},
		},
		QuickReplies: []domain.QuickReply{
			{ContentType: "text", Title: "🆘 Тусламж", Payload: TopicSupport},
			{ContentType: "text", Title: "📍 Байршил", Payload: TopicLocation},
			{ContentType: "text", Title: "🏠 Үндсэн цэс", Payload: TopicMainMenu},
		},
	},
	TopicSupport: {
		Type: domain.RenderTextWithQuickReplies,
		Text: "👋 Та манай багтай холбогдох хүсэлт илгээлээ.\n\nМанай зөвлөх танд удахгүй хариу өгнө!",
		QuickReplies: []domain.QuickReply{
			{ContentType: "text", Title: "☎️ Холбоо барих", Payload: TopicContact},
			{ContentType: "text", Title: "📍 Байршил", Payload: TopicLocation},
			{ContentType: "text", Title: "🏠 Үндсэн цэс", Payload: TopicMainMenu},
		},
	},
	TopicWebsite: {
		Type: domain.RenderButton,
		Text: "🌐 Оюунлаг сургуулийн вэбсайт:",
		Buttons: []domain.Button{
			{Type: domain.ButtonWebURL, Title: "🌐 Вэбсайт нээх", URL: "http://www.oyunlag.edu.mn"},
			{Type: domain.ButtonPostback, Title: "🏠 Буцах", Payload: TopicMainMenu},
		},
	},
	TopicVirtualTour: {
		Type:         domain.RenderCarousel,
		Text:         "🏫 Виртуал аялал — сургуулийн орчинтой танилцана уу!",
		QuickReplies: defaultQuickReplies,
	},
	TopicEventNews: {
		Type: domain.RenderTextWithQuickReplies,
		Text: "🔔 Сургуулийн үйл явдлын мэдээ\n\nЭлсэлт, нээлттэй хаалганы өдөрлөг, арга хэмжээний мэдээг хамгийн түрүүнд авахыг хүсвэл бүртгүүлээрэй.",
		QuickReplies: []domain.QuickReply{
			{ContentType: "text", Title: "🔔 Бүртгүүлэх", Payload: "EVENT_NEWS_ON"},
			{ContentType: "text", Title: "🔕 Болих", Payload: "EVENT_NEWS_OFF"},
			{ContentType: "text", Title: "🏠 Үндсэн цэс", Payload: TopicMainMenu},
		},
	},
}
