package content

// SchoolFacts is the static fact sheet injected into the AI system
// prompt so free-text answers stay grounded in real school information.
const SchoolFacts = `Сургуулийн нэр: Оюунлаг сургууль (Oyunlag School)
Байршил: Улаанбаатар хот, Хан-Уул дүүрэг, 11-р хороо, Махатма Гандигийн гудамж
Утас: 7575 5050
Вэбсайт: https://www.oyunlag.edu.mn
Хичээлийн цаг: Даваа-Баасан 08:00-16:00
Хөтөлбөр: Монгол улсын цөм хөтөлбөр, Кембрижийн олон улсын хөтөлбөр (Cambridge Primary, Lower Secondary, IGCSE)
Ангиуд: Бага, дунд, ахлах сургууль (1-12-р анги)
Нэг ангийн хүүхдийн тоо: 25-28
Англи хэл: Өдөр бүр англи хэлний хичээлтэй, Кембрижийн хөтөлбөрөөр
Хоол: Өдөрт 2 удаа халуун хоол, нэмэлт цайны цаг
Автобус: Хотын төв чиглэлүүдэд сургуулийн автобус үйлчилдэг
Элсэлт: Жил бүрийн 4-5 сард элсэлтийн бүртгэл явагдана
Дотуур байр: Дотуур байргүй, өдрийн сургалттай`
