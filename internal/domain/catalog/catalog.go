// Package catalog holds the fixed business content of the cotizador: the
// classification lists, the company letterhead, the default proposal rows and
// every canned paragraph the quotation document is assembled from.
package catalog

import (
	"fmt"
	"strings"
)

// Sectors (rubros) a client company can belong to.
var Sectors = []string{
	"Inmobiliario",
	"Retail",
	"Financiero",
	"Mobiliario",
	"Productos",
	"Pet",
	"Restaurante",
	"Otros",
}

// ServiceTypes (servicios) that can be quoted.
var ServiceTypes = []string{
	"Landing",
	"Web Multiproyecto",
	"One Page",
	"Aplicación",
	"E-Commerce",
	"Mejora (solo mostrar el tipo básico)",
	"Bolsa De Horas",
	"Otros",
}

// IsMejora reports whether the service type is the improvement service, which
// gets special payment terms: a single payment on acceptance.
func IsMejora(serviceType string) bool {
	return strings.HasPrefix(serviceType, "Mejora")
}

// Tiers of project complexity.
var Tiers = []string{"Básico", "Complejo"}

// CRMOptions the proposal can integrate with. "Otros" enables a free-text field.
var CRMOptions = []string{"Sperant", "Evolta", "Otros"}

// Areas a user can log into. The area travels in the session token and tags
// every operation the user saves.
var Areas = []string{"Comercial", "Marketing", "TI", "Administración", "Medios"}

// Company letterhead shown on every quotation.
const (
	CompanyName    = "Alavista Lab SAC"
	CompanyRUC     = "20607124711"
	CompanyAddress = "Av. Benavides 2975, Oficina 809, Miraflores"
	CompanyContact = "Juan Jesús Astete Meza"
	CompanyPhone   = "959271576"
	SignatoryName  = "Juan Jesús Astete Meza"
	SignatoryTitle = "CTO"
)

// DefaultProjectDuration prefills the duration field of a new document.
const DefaultProjectDuration = "El proyecto tendrá un tiempo de desarrollo de 3 meses o 90 días calendario."

// DefaultFeatures are the seven pre-loaded "características" cards.
var DefaultFeatures = []string{
	"Diseño Amigable y Atractivo: El diseño de la página web juega un papel crucial en la primera impresión que causa en los visitantes. Una página web renovada y moderna, con un diseño atractivo y amigable, captará la atención de los usuarios y los invita a explorar más a fondo.",
	"Experiencia de Usuario Mejorada: Renovar la página web para ofrecer una experiencia de usuario fluida y agradable. Con una navegación intuitiva, un diseño responsive y tiempos de carga rápidos, los usuarios podrán encontrar fácilmente la información que buscan y disfrutar de una experiencia sin contratiempos.",
	"Optimización para Motores de Búsqueda (SEO): La implementación de técnicas avanzadas de SEO en el diseño y desarrollo de la página web garantiza una mejor visibilidad en los motores de búsqueda. Esto significa que la página web estará mejor posicionada en los resultados de búsqueda, lo que aumentará su visibilidad y alcance entre los clientes potenciales.",
	"Funcionalidades Avanzadas: Al renovar la página web podremos integrar funcionalidades avanzadas que mejoran la experiencia del usuario y facilitan el proceso de búsqueda y compra de propiedades. Desde herramientas de búsqueda avanzada, e-commerce, hasta tours virtuales de los departamentos, estas funcionalidades agregan valor y diferencian a la empresa de la competencia.",
	"Imagen Profesional y Credibilidad: Una página web renovada refleja una imagen profesional y confiable de la empresa. Con un diseño pulido y contenido de calidad, la página web inspira confianza en los visitantes y les da la seguridad de estar tratando con una empresa seria y competente.",
	"Funcionalidades Avanzadas: Al renovar la página web podremos integrar funcionalidades avanzadas que mejoran la experiencia del usuario y facilitan el proceso de búsqueda y compra de propiedades. Desde herramientas de búsqueda avanzada, e-commerce, hasta tours virtuales de los departamentos, estas funcionalidades agregan valor y diferencian a la empresa de la competencia.",
	"Imagen Profesional y Credibilidad: Una página web renovada refleja una imagen profesional y confiable de la empresa. Con un diseño pulido y contenido de calidad, la página web inspira confianza en los visitantes y les da la seguridad de estar tratando con una empresa seria y competente.",
}

// DefaultProposalItems are the pre-loaded descriptions of the pricing table.
var DefaultProposalItems = []string{
	"Diseño UX/UI completo",
	"Desarrollo Frontend Responsive",
	"Desarrollo Backend y API",
	"Integración CRM",
	"Optimización SEO",
	"Testing y QA",
	"Despliegue en Producción",
}

// Boilerplate card bodies. Each one is individually removable per document.
const (
	UXProcessText = "Análisis de usuarios y objetivos del negocio. Investigación de competencia y mejores prácticas. Creación de user personas y user journey maps. Wireframing y prototipado de baja fidelidad. Testing de usabilidad y iteración basada en feedback."

	UIProcessText = "Definición del sistema de diseño y guía de estilos. Creación de moodboards y paletas de colores. Diseño de componentes y elementos de interfaz. Maquetación de pantallas en alta fidelidad. Implementación de micro-interacciones y animaciones."

	SEOProcessText = "Investigación de palabras clave relevantes para el sector. Análisis de la competencia y oportunidades de posicionamiento. Optimización on-page de títulos, meta descripciones y contenido. Implementación de estructura de datos y schema markup. Configuración de herramientas de análisis y seguimiento."

	DeliverablesText = "Sitio web completamente funcional y responsive. Panel de administración para gestión de contenido. Documentación técnica del proyecto. Manual de usuario para el cliente. Certificado SSL y optimización de rendimiento."

	WebMobileText = "Desarrollo responsive que se adapta a todos los dispositivos. Optimización para móviles con diseño mobile-first. Implementación de técnicas de lazy loading y optimización de imágenes. Testing en múltiples navegadores y dispositivos."

	ConsiderationsText = "El proyecto incluye hasta 3 revisiones de diseño. Los cambios mayores después de la aprobación final pueden generar costos adicionales. Se incluye capacitación básica para el uso del panel de administración."

	ExclusionsText = "Hosting y dominio (se pueden gestionar por separado). Contenido fotográfico profesional (se pueden sugerir bancos de imágenes). Integración con sistemas externos complejos (se cotizan por separado). Mantenimiento posterior al lanzamiento (se puede contratar como servicio adicional)."
)

// Placeholder sentences for optional sections that arrive empty. The document
// always renders the section; only the content degrades to these.
const (
	PlaceholderPageDetail         = "No se ha especificado detalle de la página web."
	PlaceholderCRM                = "No se ha especificado integración con CRM."
	PlaceholderItems              = "No se han especificado items en la propuesta económica."
	PlaceholderAdditionalServices = "No se han especificado servicios adicionales."
)

// Fixed contractual conditions.
const (
	ConditionValidity        = "Validez de la Cotización: 30 días."
	ConditionPaymentStandard = "Forma de pago: 50% al aceptar la propuesta y 50% al recibir el acta de conformidad del servicio y su posterior publicación en producción."
	ConditionPaymentMejora   = "Forma de pago: 100% al aceptar la propuesta."
	ConditionCurrency        = "Moneda: Dólares Americanos."
	ConditionDuration        = "Duración del Proyecto: El proyecto tiene una duración estimada de 90 días calendario, divididas en sprints de 2 semanas cada uno. Se entregarán avances cada 15 días."
	ConditionIP              = "Propiedad Intelectual: Todos los derechos de propiedad intelectual desarrollados durante este proyecto serán transferidos al cliente una vez se hayan realizado todos los pagos acordados."
	ConditionConfidentiality = "Confidencialidad: Ambas partes acuerdan mantener la confidencialidad de toda la información compartida durante el proyecto."
	ConditionWarranty        = "Garantía: Se garantiza soporte y mantenimiento por un período de 6 meses después del despliegue final."
)

// Delivery-time variation clauses, rendered as bullets under the conditions.
var ConditionTimeVariations = []string{
	"Factores Externos: El tiempo estimado para la finalización de cada fase puede variar debido a factores externos fuera de nuestro control, como interrupciones en el servicio de las plataformas, cambios en las regulaciones legales, o eventos de fuerza mayor.",
	"Factores Propios del Cliente: Cualquier retraso en el feedback, la aceptación de entregables o cambios en los requisitos por parte del cliente puede afectar el cronograma establecido. Es esencial que el cliente proporcione respuestas y aprobaciones de manera oportuna para mantener el cronograma previsto.",
	"Revisión y Ajustes: Al finalizar cada sprint, se realizarán revisiones y ajustes necesarios en función del feedback recibido del cliente. Cualquier cambio significativo que requiera un esfuerzo adicional será discutido y presupuestado por separado.",
}

// serviceNeedTexts maps sector -> service type -> intro paragraph.
var serviceNeedTexts = map[string]map[string]string{
	"Inmobiliario": {
		"Landing":    "En un mercado inmobiliario en constante evolución, la presencia en línea se ha convertido en un elemento indispensable para el éxito y la competitividad de las empresas del sector. En este contexto, la implementación de una nueva página web completa no solo responde a una necesidad operativa, sino que representa una oportunidad estratégica para destacar y posicionarse de manera efectiva en el mercado.",
		"E-Commerce": "El sector inmobiliario requiere una plataforma de comercio electrónico robusta que permita a los clientes explorar, comparar y adquirir propiedades de manera eficiente y segura.",
		"Aplicación": "Una aplicación móvil especializada para el sector inmobiliario facilitará la búsqueda de propiedades, visualización de tours virtuales y comunicación directa con agentes.",
	},
	"Retail": {
		"E-Commerce": "En el competitivo mundo del retail, una plataforma de comercio electrónico moderna es esencial para captar clientes, mostrar productos de manera atractiva y facilitar las ventas online.",
		"Landing":    "Una página web efectiva para retail debe combinar diseño atractivo con funcionalidad comercial, creando una experiencia que convierta visitantes en compradores.",
		"Aplicación": "Una aplicación móvil para retail permite a los clientes acceder fácilmente al catálogo, realizar compras y recibir notificaciones sobre ofertas especiales.",
	},
	"Financiero": {
		"Landing":           "En el sector financiero, la confianza y seguridad son primordiales. Una página web profesional debe transmitir estos valores mientras facilita el acceso a servicios financieros.",
		"Aplicación":        "Una aplicación financiera segura permite a los usuarios gestionar sus finanzas, realizar transacciones y acceder a servicios bancarios de manera conveniente.",
		"Web Multiproyecto": "Un ecosistema web completo para servicios financieros que integre múltiples productos y servicios bajo una marca cohesiva.",
	},
}

// ServiceNeedText returns the canned intro paragraph for a sector and service
// combination, or a generic sentence when no specific copy exists.
func ServiceNeedText(sector, serviceType string) string {
	if byService, ok := serviceNeedTexts[sector]; ok {
		if text, ok := byService[serviceType]; ok {
			return text
		}
	}
	return fmt.Sprintf("En el sector %s, la implementación de %s representa una oportunidad estratégica para mejorar la presencia digital y optimizar la experiencia del cliente, adaptándose a las demandas actuales del mercado.", strings.ToLower(sector), strings.ToLower(serviceType))
}

// ValidSector reports whether s is a known sector.
func ValidSector(s string) bool { return contains(Sectors, s) }

// ValidServiceType reports whether s is a known service type.
func ValidServiceType(s string) bool { return contains(ServiceTypes, s) }

// ValidArea reports whether a is a known area.
func ValidArea(a string) bool { return contains(Areas, a) }

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
