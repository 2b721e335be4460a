package scaffold

import "path/filepath"

// HomepageStyle selects which homepage body to generate.
type HomepageStyle int

const (
	// HomePlain is the no-styling body.
	HomePlain HomepageStyle = iota
	// HomeTailwind uses utility classes only.
	HomeTailwind
	// HomeShadcn uses utility classes plus the baseline shadcn components.
	HomeShadcn
)

const homePlainTS = `import type { ReactElement } from "react"

export default function Home(): ReactElement {
  return (
    <main>
      <h1>Welcome to your new app</h1>
      <p>Edit app/page.tsx to get started.</p>
    </main>
  )
}
`

const homePlainJS = `export default function Home() {
  return (
    <main>
      <h1>Welcome to your new app</h1>
      <p>Edit app/page.jsx to get started.</p>
    </main>
  )
}
`

const homeTailwindTS = `import type { ReactElement } from "react"

export default function Home(): ReactElement {
  return (
    <main className="flex min-h-screen flex-col items-center justify-center gap-4 p-24">
      <h1 className="text-4xl font-bold tracking-tight">Welcome to your new app</h1>
      <p className="text-muted-foreground">Edit app/page.tsx to get started.</p>
    </main>
  )
}
`

const homeTailwindJS = `export default function Home() {
  return (
    <main className="flex min-h-screen flex-col items-center justify-center gap-4 p-24">
      <h1 className="text-4xl font-bold tracking-tight">Welcome to your new app</h1>
      <p className="text-muted-foreground">Edit app/page.jsx to get started.</p>
    </main>
  )
}
`

const homeShadcnTS = `import type { ReactElement } from "react"
import { Button } from "@/components/ui/button"
import {
  Card,
  CardContent,
  CardDescription,
  CardHeader,
  CardTitle,
} from "@/components/ui/card"

export default function Home(): ReactElement {
  return (
    <main className="flex min-h-screen flex-col items-center justify-center p-24">
      <Card className="w-full max-w-md">
        <CardHeader>
          <CardTitle>Welcome to your new app</CardTitle>
          <CardDescription>shadcn/ui is wired up and ready.</CardDescription>
        </CardHeader>
        <CardContent className="flex gap-2">
          <Button>Get started</Button>
          <Button variant="outline">Docs</Button>
        </CardContent>
      </Card>
    </main>
  )
}
`

const homeShadcnJS = `import { Button } from "@/components/ui/button"
import {
  Card,
  CardContent,
  CardDescription,
  CardHeader,
  CardTitle,
} from "@/components/ui/card"

export default function Home() {
  return (
    <main className="flex min-h-screen flex-col items-center justify-center p-24">
      <Card className="w-full max-w-md">
        <CardHeader>
          <CardTitle>Welcome to your new app</CardTitle>
          <CardDescription>shadcn/ui is wired up and ready.</CardDescription>
        </CardHeader>
        <CardContent className="flex gap-2">
          <Button>Get started</Button>
          <Button variant="outline">Docs</Button>
        </CardContent>
      </Card>
    </main>
  )
}
`

// homepageBody picks one of the six mutually exclusive templates.
func homepageBody(ts bool, style HomepageStyle) string {
	switch style {
	case HomeShadcn:
		if ts {
			return homeShadcnTS
		}
		return homeShadcnJS
	case HomeTailwind:
		if ts {
			return homeTailwindTS
		}
		return homeTailwindJS
	default:
		if ts {
			return homePlainTS
		}
		return homePlainJS
	}
}

// WriteHomepage overwrites app/page with the selected template body.
func WriteHomepage(root string, useSrc, ts bool, style HomepageStyle) error {
	path := filepath.Join(BaseDir(root, useSrc), "app", "page."+MarkupExt(ts))
	return atomicWrite(path, homepageBody(ts, style))
}
