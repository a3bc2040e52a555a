package entity

// ServiceIcon es el conjunto cerrado de íconos que un servicio destacado
// puede declarar. El cliente decide cómo dibujar cada tag; aquí solo se
// valida la pertenencia al conjunto.
type ServiceIcon string

const (
	IconScissors ServiceIcon = "scissors"
	IconRazor    ServiceIcon = "razor"
	IconSparkles ServiceIcon = "sparkles"
	IconDroplets ServiceIcon = "droplets"
	IconWrench   ServiceIcon = "wrench"
	IconCar      ServiceIcon = "car"
	IconGauge    ServiceIcon = "gauge"
	IconBattery  ServiceIcon = "battery"
)

// Valid indica si el ícono pertenece al conjunto soportado.
func (i ServiceIcon) Valid() bool {
	switch i {
	case IconScissors, IconRazor, IconSparkles, IconDroplets,
		IconWrench, IconCar, IconGauge, IconBattery:
		return true
	}
	return false
}

// ContentRecord es el contenido editable completo de una plantilla.
// Todos los campos son texto plano; no se impone consistencia entre campos
// (el precio de un servicio destacado es texto libre).
type ContentRecord struct {
	Logo     LogoSection     `json:"logo"`
	Hero     HeroSection     `json:"hero"`
	About    AboutSection    `json:"about"`
	Services ServicesSection `json:"services"`
	Contact  ContactSection  `json:"contact"`
	Colors   ColorsSection   `json:"colors"`
	Footer   FooterSection   `json:"footer"`
}

// LogoSection logo del sitio.
type LogoSection struct {
	Image string `json:"image"`
	Alt   string `json:"alt"`
}

// HeroSection encabezado principal de la página.
type HeroSection struct {
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	CTAText         string `json:"ctaText"`
	BackgroundImage string `json:"backgroundImage"`
}

// AboutSection sección "quiénes somos".
type AboutSection struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// ServicesSection servicios destacados de la página (orden de inserción).
type ServicesSection struct {
	Title string        `json:"title"`
	Items []ServiceItem `json:"items"`
}

// ServiceItem un servicio destacado.
type ServiceItem struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       string      `json:"price"`
	Icon        ServiceIcon `json:"icon"`
}

// ContactSection datos de contacto.
type ContactSection struct {
	Title   string `json:"title"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Hours   string `json:"hours"`
}

// ColorsSection tema de color del sitio (strings CSS, ej. "#1a2b3c").
type ColorsSection struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// FooterSection pie de página.
type FooterSection struct {
	Copyright string `json:"copyright"`
}

// DefaultContent devuelve el contenido inicial de fábrica para una variante.
// Se usa cuando no hay nada persistido (o cuando lo persistido es ilegible).
func DefaultContent(business BusinessType) ContentRecord {
	switch business {
	case BusinessAutomotive:
		return defaultAutomotiveContent()
	default:
		return defaultBarbershopContent()
	}
}

func defaultBarbershopContent() ContentRecord {
	return ContentRecord{
		Logo: LogoSection{
			Image: "/images/logo-barbearia.png",
			Alt:   "MV Barbearia",
		},
		Hero: HeroSection{
			Title:           "MV Barbearia",
			Subtitle:        "Seu visual, nossa missão",
			CTAText:         "Agende seu horário",
			BackgroundImage: "/images/bannerbarbearia.png",
		},
		About: AboutSection{
			Title:       "Sobre nós",
			Description: "Somos uma barbearia moderna que combina técnicas tradicionais com as últimas tendências em cortes masculinos.",
			Image:       "/images/barbearia-interior.png",
		},
		Services: ServicesSection{
			Title: "Nossos serviços",
			Items: []ServiceItem{
				{Name: "Corte Degradê", Description: "Corte moderno com técnica de degradê", Price: "R$ 35,00", Icon: IconScissors},
				{Name: "Barba Tradicional", Description: "Barba feita com navalha e produtos especiais", Price: "R$ 25,00", Icon: IconRazor},
				{Name: "Hidratação Capilar", Description: "Tratamento completo para cabelos", Price: "R$ 40,00", Icon: IconDroplets},
			},
		},
		Contact: ContactSection{
			Title:   "Contato",
			Address: "Rua Lauro Linhares 1060, Trindade",
			Phone:   "(48) 99140-1012",
			Email:   "mvcontato@gmail.com",
			Hours:   "Segunda - Sexta 9h às 19h | Sáb: 8h às 14h",
		},
		Colors: ColorsSection{
			Primary:   "#1f2937",
			Secondary: "#b45309",
			Accent:    "#f59e0b",
		},
		Footer: FooterSection{
			Copyright: "© MV Barbearia. Todos os direitos reservados.",
		},
	}
}

func defaultAutomotiveContent() ContentRecord {
	return ContentRecord{
		Logo: LogoSection{
			Image: "/images/logo-autocenter.png",
			Alt:   "MV Auto Center",
		},
		Hero: HeroSection{
			Title:           "MV Auto Center",
			Subtitle:        "Cuidamos do seu carro como se fosse nosso",
			CTAText:         "Solicite um orçamento",
			BackgroundImage: "/images/banner-autocenter.png",
		},
		About: AboutSection{
			Title:       "Sobre a oficina",
			Description: "Oficina mecânica completa com profissionais certificados e equipamentos de diagnóstico de última geração.",
			Image:       "/images/oficina-interior.png",
		},
		Services: ServicesSection{
			Title: "Serviços",
			Items: []ServiceItem{
				{Name: "Troca de Óleo", Description: "Troca de óleo e filtros com produtos homologados", Price: "R$ 120,00", Icon: IconDroplets},
				{Name: "Revisão Completa", Description: "Revisão preventiva com checklist de 40 itens", Price: "R$ 250,00", Icon: IconWrench},
				{Name: "Diagnóstico Eletrônico", Description: "Leitura de falhas com scanner automotivo", Price: "R$ 90,00", Icon: IconGauge},
			},
		},
		Contact: ContactSection{
			Title:   "Fale conosco",
			Address: "Av. Madre Benvenuta 820, Santa Mônica",
			Phone:   "(48) 99140-2020",
			Email:   "mvautocenter@gmail.com",
			Hours:   "Segunda - Sexta 8h às 18h | Sáb: 8h às 12h",
		},
		Colors: ColorsSection{
			Primary:   "#111827",
			Secondary: "#b91c1c",
			Accent:    "#ef4444",
		},
		Footer: FooterSection{
			Copyright: "© MV Auto Center. Todos os direitos reservados.",
		},
	}
}
