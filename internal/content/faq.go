package content

import "oyunlag-bot/internal/domain"

// FAQ is the fixed question bank searched when no keyword rule fires.
// Table order doubles as the tie-break order for equal match scores.
var FAQ = []domain.FAQEntry{
	{
		ID:       "faq-uniform",
		Question: "Сургуулийн дүрэмт хувцас заавал өмсөх үү?",
		Answer:   "Тийм ээ, бүх сурагч дүрэмт хувцастай хичээллэнэ. Дүрэмт хувцасыг сургуулийн дэлгүүрээс захиалж авна. Үнэ: 180,000-250,000₮.",
		Keywords: []string{"дүрэмт", "хувцас", "uniform", "форм"},
	},
	{
		ID:       "faq-class-size",
		Question: "Нэг ангид хэдэн сурагч суралцдаг вэ?",
		Answer:   "Нэг ангид дунджаар 24-28 сурагч суралцдаг. Бэлтгэл ангид 20 хүртэл сурагч байна.",
		Keywords: []string{"анги", "сурагч", "хэдэн", "class size"},
	},
	{
		ID:       "faq-tuition-discount",
		Question: "Төлбөрийн хөнгөлөлт байдаг уу?",
		Answer:   "Нэг гэр бүлийн 2 дахь хүүхдэд 5%, 3 дахь хүүхдэд 10% хөнгөлөлт үзүүлнэ. Бүтэн төлбөрөө урьдчилж төлбөл 3% хөнгөлнө.",
		Keywords: []string{"хөнгөлөлт", "төлбөр", "tuition", "discount", "урьдчилж"},
	},
	{
		ID:       "faq-english",
		Question: "Англи хэлний хичээл хэдэн цагаар ордог вэ?",
		Answer:   "Бага ангид долоо хоногт 5 цаг, дунд болон ахлах ангид Pearson Edexcel хөтөлбөрөөр өдөр бүр англи хэлээр хичээллэнэ.",
		Keywords: []string{"англи", "хэл", "english", "ielts"},
	},
	{
		ID:       "faq-schedule",
		Question: "Хичээл хэдэн цагт эхэлж хэдэн цагт тардаг вэ?",
		Answer:   "Хичээл 08:00 цагт эхэлж бага анги 15:00, дунд/ахлах анги 16:00 цагт тарна. Дугуйлан 16:00-18:00 цагийн хооронд явагдана.",
		Keywords: []string{"цаг", "хуваарь", "эхлэх", "тарах", "schedule"},
	},
	{
		ID:       "faq-dormitory",
		Question: "Дотуур байр байдаг уу?",
		Answer:   "Одоогоор дотуур байргүй. Автобусны үйлчилгээ хотын ихэнх чиглэлд явдаг тул алслагдсан хорооллоос ирэх боломжтой.",
		Keywords: []string{"дотуур", "байр", "dormitory", "амьдрах"},
	},
	{
		ID:       "faq-transfer",
		Question: "Дунд ангид шилжин суралцаж болох уу?",
		Answer:   "Боломжтой. Суудал чөлөөтэй тохиолдолд түвшин тогтоох шалгалт өгч шилжинэ. Элсэлтийн багтай 7575 5050 утсаар холбогдоно уу.",
		Keywords: []string{"шилжих", "шилжилт", "transfer", "дунд анги"},
	},
	{
		ID:       "faq-documents",
		Question: "Элсэхэд ямар бичиг баримт шаардлагатай вэ?",
		Answer:   "Төрсний гэрчилгээ, эцэг эхийн иргэний үнэмлэх, өмнөх сургуулийн тодорхойлолт, 2 хувь цээж зураг шаардлагатай.",
		Keywords: []string{"бичиг", "баримт", "материал", "documents", "гэрчилгээ"},
	},
}
